package mdast

import "github.com/tapedown/tapedown/tape"

// Inlines is a sequence of inline nodes, the content type most inline and
// block constructors hold.
type Inlines []Inline

// Tokens concatenates every inline's span in order.
func (is Inlines) Tokens() tape.Tape {
	var out tape.Tape
	for _, i := range is {
		out = out.Concat(i.Tokens())
	}
	return out
}

// PlainText is a run of ordinary characters.
type PlainText struct {
	Text tape.Tape
}

func (n PlainText) Tokens() tape.Tape { return n.Text }
func (n PlainText) Renderable() Renderable {
	return Renderable{Label: "PlainText", Leaf: n.Text.String()}
}

// LineBreak is a single newline occurring inside inline content.
type LineBreak struct {
	Newline tape.Tape
}

func (n LineBreak) Tokens() tape.Tape { return n.Newline }
func (n LineBreak) Renderable() Renderable {
	return Renderable{Label: "LineBreak"}
}

// Raw is unparsed fallback content, used inside bounded sub-parsers that
// give up on recursive inline recognition (e.g. table cells, whose
// inline re-parsing is a declared future extension).
type Raw struct {
	Text tape.Tape
}

func (n Raw) Tokens() tape.Tape { return n.Text }
func (n Raw) Renderable() Renderable {
	return Renderable{Label: "Raw", Leaf: n.Text.String()}
}

// Link is `[text](destination "title")`.
type Link struct {
	Text        InSquareBrackets[Inlines]
	OpenParen   tape.Tape
	Destination tape.Tape
	Title       *InDoubleQuotes[tape.Tape]
	CloseParen  tape.Tape
}

func (n Link) Tokens() tape.Tape {
	out := n.Text.Open.Concat(n.Text.Content.Tokens()).Concat(n.Text.Close)
	out = out.Concat(n.OpenParen).Concat(n.Destination)
	if n.Title != nil {
		out = out.Concat(n.Title.Open).Concat(n.Title.Content).Concat(n.Title.Close)
	}
	return out.Concat(n.CloseParen)
}

func (n Link) Renderable() Renderable {
	children := []NamedChild{
		{Key: "text", Child: n.Text.Content.Renderable()},
		{Key: "destination", Child: Renderable{Label: "text", Leaf: n.Destination.String()}},
	}
	if n.Title != nil {
		children = append(children, NamedChild{Key: "title", Child: Renderable{Label: "text", Leaf: n.Title.Content.String()}})
	}
	return Renderable{Label: "Link", Children: children}
}

func (is Inlines) Renderable() Renderable {
	children := make([]NamedChild, len(is))
	for i, n := range is {
		children[i] = NamedChild{Key: "content", Child: n.Renderable()}
	}
	return Renderable{Label: "Inlines", Children: children}
}

// Image is `!` followed by a Link.
type Image struct {
	Bang tape.Tape
	Link Link
}

func (n Image) Tokens() tape.Tape { return n.Bang.Concat(n.Link.Tokens()) }
func (n Image) Renderable() Renderable {
	return Renderable{Label: "Image", Children: []NamedChild{{Key: "link", Child: n.Link.Renderable()}}}
}

// Emphasis is `*...*`, `**...**`, `***...***` (or `_`-delimited), open and
// close delimiters carrying the identical repeated character.
type Emphasis struct {
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (n Emphasis) Tokens() tape.Tape {
	return n.OpenDelim.Concat(n.Content.Tokens()).Concat(n.CloseDelim)
}
func (n Emphasis) Renderable() Renderable {
	return Renderable{Label: "Emphasis", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Highlight is `==...==`.
type Highlight struct {
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (n Highlight) Tokens() tape.Tape {
	return n.OpenDelim.Concat(n.Content.Tokens()).Concat(n.CloseDelim)
}
func (n Highlight) Renderable() Renderable {
	return Renderable{Label: "Highlight", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Strikethrough is `~~...~~`.
type Strikethrough struct {
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (n Strikethrough) Tokens() tape.Tape {
	return n.OpenDelim.Concat(n.Content.Tokens()).Concat(n.CloseDelim)
}
func (n Strikethrough) Renderable() Renderable {
	return Renderable{Label: "Strikethrough", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Sub is `~...~`.
type Sub struct {
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (n Sub) Tokens() tape.Tape {
	return n.OpenDelim.Concat(n.Content.Tokens()).Concat(n.CloseDelim)
}
func (n Sub) Renderable() Renderable {
	return Renderable{Label: "Sub", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// Sup is `^...^`.
type Sup struct {
	OpenDelim  tape.Tape
	Content    Inlines
	CloseDelim tape.Tape
}

func (n Sup) Tokens() tape.Tape {
	return n.OpenDelim.Concat(n.Content.Tokens()).Concat(n.CloseDelim)
}
func (n Sup) Renderable() Renderable {
	return Renderable{Label: "Sup", Children: []NamedChild{{Key: "content", Child: n.Content.Renderable()}}}
}

// InlineCode is a backtick-delimited code span; content is taken verbatim,
// with no recursive inline parsing.
type InlineCode struct {
	OpenTicks  tape.Tape
	Content    tape.Tape
	CloseTicks tape.Tape
}

func (n InlineCode) Tokens() tape.Tape {
	return n.OpenTicks.Concat(n.Content).Concat(n.CloseTicks)
}
func (n InlineCode) Renderable() Renderable {
	return Renderable{Label: "InlineCode", Leaf: n.Content.String()}
}
