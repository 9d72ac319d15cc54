// Package mdast implements the lossless AST model: every Inline and Block
// variant stores its delimiter tokens as tape.Tape values (not bare
// strings) so that the exact source text and positions are always
// recoverable. See Reconstruct for the losslessness property this buys.
package mdast

import "github.com/tapedown/tapedown/tape"

// Inline is any inline-level AST node. Tokens returns the node's full
// literal span (its own delimiters plus, recursively, every child's
// Tokens) in source order, the building block Reconstruct uses.
type Inline interface {
	Tokens() tape.Tape
	Renderable() Renderable
}

// Block is any block-level AST node.
type Block interface {
	Tokens() tape.Tape
	Renderable() Renderable
}

// Document is the root of a parse: an ordered sequence of Blocks.
type Document struct {
	Blocks []Block
}

// Tokens concatenates every block's span, in order.
func (d *Document) Tokens() tape.Tape {
	var out tape.Tape
	if d == nil {
		return out
	}
	for _, b := range d.Blocks {
		out = out.Concat(b.Tokens())
	}
	return out
}

// Renderable presents a node to a TreeRenderer: a label plus either named
// child renderables or raw leaf strings.
type Renderable struct {
	Label    string
	Children []NamedChild
	Leaf     string // set instead of Children for leaf nodes (e.g. PlainText)
}

// NamedChild pairs a key with a child Renderable.
type NamedChild struct {
	Key   string
	Child Renderable
}

// TreeRenderer is the opaque pretty-printing collaborator the AST knows
// how to feed; this package never implements one, only the Renderable()
// protocol a renderer consumes.
type TreeRenderer interface {
	Render(Renderable) string
}
