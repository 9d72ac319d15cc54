package mdast

import "github.com/tapedown/tapedown/tape"

// Blocks is a sequence of block nodes.
type Blocks []Block

func (bs Blocks) Tokens() tape.Tape {
	var out tape.Tape
	for _, b := range bs {
		out = out.Concat(b.Tokens())
	}
	return out
}

func (bs Blocks) Renderable() Renderable {
	children := make([]NamedChild, len(bs))
	for i, b := range bs {
		children[i] = NamedChild{Key: "content", Child: b.Renderable()}
	}
	return Renderable{Label: "Blocks", Children: children}
}

// HeadingID is the optional trailing `{id}` of a Heading.
type HeadingID struct {
	Open  tape.Tape // "{"
	Text  tape.Tape
	Close tape.Tape // "}"
}

// Heading is `#`-prefixed (1-6 hashes), with inline content and an
// optional explicit id.
type Heading struct {
	Hashes  tape.Tape
	Content Inlines
	ID      *HeadingID
}

func (n Heading) Tokens() tape.Tape {
	out := n.Hashes.Concat(n.Content.Tokens())
	if n.ID != nil {
		out = out.Concat(n.ID.Open).Concat(n.ID.Text).Concat(n.ID.Close)
	}
	return out
}

func (n Heading) Renderable() Renderable {
	children := []NamedChild{{Key: "content", Child: n.Content.Renderable()}}
	return Renderable{Label: "Heading", Children: children}
}

// Level reports the heading's level (1-6) from the length of Hashes.
func (n Heading) Level() int { return len(n.Hashes) }

// Paragraph is the block-grammar fallback: accumulated inline content up
// to a blank line or end of input.
type Paragraph struct {
	Content Inlines
}

func (n Paragraph) Tokens() tape.Tape { return n.Content.Tokens() }
func (n Paragraph) Renderable() Renderable {
	return Renderable{Label: "Paragraph", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Blockquote is `> `-led content, re-parsed as Blocks with the same block
// grammar as the top level; no blockquote scope is pushed for it. Markers holds the leader (">" or "> ") stripped from each
// physical line, one per line of Content.Tokens(), in order; Tokens
// reinserts them after every newline to reconstruct the original source
// exactly while Content itself holds the de-prefixed text (e.g.
// "A1 Red\nA2 Blue" rather than "A1 Red\n> A2 Blue").
type Blockquote struct {
	Markers []tape.Tape
	Content Blocks
}

func (n Blockquote) Tokens() tape.Tape {
	return reinsertMarkers(n.Content.Tokens(), n.Markers)
}

func (n Blockquote) Renderable() Renderable {
	return Renderable{Label: "Blockquote", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// reinsertMarkers threads per-line leaders removed during parsing back
// into content, one marker per physical line in order, immediately after
// each newline (the first marker goes at the very start). It is the
// inverse of stripping a per-line leader such as a blockquote's "> " or
// a list item's continuation indent, letting Content hold normalized
// text while Tokens still reconstructs the original source exactly.
func reinsertMarkers(content tape.Tape, markers []tape.Tape) tape.Tape {
	if len(markers) == 0 {
		return content
	}
	out := markers[0]
	rest := markers[1:]
	start := 0
	for i, c := range content {
		if c.Value != '\n' {
			continue
		}
		out = out.Concat(content[start : i+1])
		start = i + 1
		if len(rest) > 0 {
			out = out.Concat(rest[0])
			rest = rest[1:]
		}
	}
	return out.Concat(content[start:])
}

// UnorderedListItem is `-`/`*`/`+` followed by a space and re-parsed
// Blocks content. Markers holds each continuation line's stripped
// leading indentation, letting Content itself carry de-indented text
// while Tokens still reconstructs exactly (mirroring Blockquote.Markers).
type UnorderedListItem struct {
	Bullet  tape.Tape
	Space   tape.Tape
	Markers []tape.Tape
	Content Blocks
}

func (n UnorderedListItem) Tokens() tape.Tape {
	return n.Bullet.Concat(n.Space).Concat(reinsertMarkers(n.Content.Tokens(), n.Markers))
}
func (n UnorderedListItem) Renderable() Renderable {
	return Renderable{Label: "UnorderedListItem", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// OrderedListItem is `digits . space` followed by re-parsed Blocks
// content, de-indented the same way UnorderedListItem is.
type OrderedListItem struct {
	Number  tape.Tape
	Dot     tape.Tape
	Space   tape.Tape
	Markers []tape.Tape
	Content Blocks
}

func (n OrderedListItem) Tokens() tape.Tape {
	out := n.Number.Concat(n.Dot).Concat(n.Space)
	return out.Concat(reinsertMarkers(n.Content.Tokens(), n.Markers))
}
func (n OrderedListItem) Renderable() Renderable {
	return Renderable{Label: "OrderedListItem", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// TaskListItem is `[ ]`/`[x]`/`[X]`/`[-]` followed by a space and
// unordered-item-shaped Blocks content, de-indented the same way. No
// container groups sibling task items; that remains unimplemented.
type TaskListItem struct {
	Header  InSquareBrackets[tape.Tape] // content is the single status char, or empty
	Space   tape.Tape
	Markers []tape.Tape
	Content Blocks
}

func (n TaskListItem) Tokens() tape.Tape {
	out := n.Header.Open.Concat(n.Header.Content).Concat(n.Header.Close)
	out = out.Concat(n.Space)
	return out.Concat(reinsertMarkers(n.Content.Tokens(), n.Markers))
}
func (n TaskListItem) Renderable() Renderable {
	return Renderable{Label: "TaskListItem", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Checked reports whether the item's status char is 'x' or 'X'.
func (n TaskListItem) Checked() bool {
	s := n.Header.Content.String()
	return s == "x" || s == "X"
}

// FencedCodeBlock is a triple-backtick/tilde fenced block with an
// optional info string and verbatim content.
type FencedCodeBlock struct {
	OpenFence  tape.Tape
	InfoString tape.Tape // may be empty
	Content    tape.Tape
	CloseFence tape.Tape
}

func (n FencedCodeBlock) Tokens() tape.Tape {
	out := n.OpenFence.Concat(n.InfoString).Concat(n.Content)
	return out.Concat(n.CloseFence)
}
func (n FencedCodeBlock) Renderable() Renderable {
	return Renderable{Label: "FencedCodeBlock", Leaf: n.Content.String()}
}

// HorizontalRule is 3+ repeats of one of `- * _`.
type HorizontalRule struct {
	Tokens_ tape.Tape
}

func (n HorizontalRule) Tokens() tape.Tape { return n.Tokens_ }
func (n HorizontalRule) Renderable() Renderable {
	return Renderable{Label: "HorizontalRule"}
}

// TableRow is the cells of one table line, bounded by the rest of a
// line and split on '|'.
type TableRow struct {
	LeadingPipe tape.Tape // may be empty
	Cells       []TableCell
	Newline     tape.Tape // may be empty on the final line
}

func (r TableRow) Tokens() tape.Tape {
	out := r.LeadingPipe
	for _, c := range r.Cells {
		out = out.Concat(c.Tokens())
	}
	return out.Concat(r.Newline)
}

func (r TableRow) Renderable() Renderable {
	children := make([]NamedChild, len(r.Cells))
	for i, c := range r.Cells {
		children[i] = NamedChild{Key: "cell", Child: c.Renderable()}
	}
	return Renderable{Label: "TableRow", Children: children}
}

// TableCell is the content between two '|' separators and its trailing
// pipe. Cell content is Raw: inline re-parsing of cells is a declared
// future extension, not implemented here.
type TableCell struct {
	Content Raw
	Pipe    tape.Tape // trailing "|", may be empty on a row's last cell
}

func (c TableCell) Tokens() tape.Tape { return c.Content.Tokens().Concat(c.Pipe) }
func (c TableCell) Renderable() Renderable {
	return Renderable{Label: "TableCell", Leaf: c.Content.Text.String()}
}

// ColumnAlign is a separator cell's alignment, from its optional colons.
type ColumnAlign int

const (
	AlignNone ColumnAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// SeparatorCell is one cell of the header separator row: optional colons
// around a dash run, denoting column alignment.
type SeparatorCell struct {
	Content tape.Tape
	Align   ColumnAlign
	Pipe    tape.Tape
}

func (c SeparatorCell) Tokens() tape.Tape { return c.Content.Concat(c.Pipe) }

// SeparatorRow is the header/body divider row of a Table.
type SeparatorRow struct {
	LeadingPipe tape.Tape
	Cells       []SeparatorCell
	Newline     tape.Tape
}

func (r SeparatorRow) Tokens() tape.Tape {
	out := r.LeadingPipe
	for _, c := range r.Cells {
		out = out.Concat(c.Tokens())
	}
	return out.Concat(r.Newline)
}

// Table is a header row, its separator row, and zero or more body rows.
type Table struct {
	Header    TableRow
	Separator SeparatorRow
	Rows      []TableRow
}

func (n Table) Tokens() tape.Tape {
	out := n.Header.Tokens().Concat(n.Separator.Tokens())
	for _, r := range n.Rows {
		out = out.Concat(r.Tokens())
	}
	return out
}

func (n Table) Renderable() Renderable {
	children := []NamedChild{{Key: "header", Child: n.Header.Renderable()}}
	for _, r := range n.Rows {
		children = append(children, NamedChild{Key: "row", Child: r.Renderable()})
	}
	return Renderable{Label: "Table", Children: children}
}

// Newline is a block-level blank line separator.
type Newline struct {
	Char tape.Tape
}

func (n Newline) Tokens() tape.Tape          { return n.Char }
func (n Newline) Renderable() Renderable { return Renderable{Label: "Newline"} }
