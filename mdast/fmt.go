package mdast

import "fmt"

// Format gives every node a terse default ("%v") form, in the teacher's
// scandown/fmt.go style (Block.Format, BlockType.Format). PlainText, Raw,
// InlineCode, Link, Image, the emphasis family, Heading and
// FencedCodeBlock add a verbose ("%+v") form printing their text or
// content; the other nodes print the same text for both verbs.

func (n PlainText) Format(f fmt.State, c rune) { formatLeaf(f, c, "PlainText", n.Text.String()) }
func (n Raw) Format(f fmt.State, c rune)       { formatLeaf(f, c, "Raw", n.Text.String()) }
func (n LineBreak) Format(f fmt.State, c rune) { fmt.Fprint(f, "LineBreak") }
func (n InlineCode) Format(f fmt.State, c rune) {
	formatLeaf(f, c, "InlineCode", n.Content.String())
}

func (n Link) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "Link{text:%+v destination:%q}", n.Text.Content, n.Destination.String())
		return
	}
	fmt.Fprintf(f, "Link(%s)", n.Destination.String())
}

func (n Image) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "Image{%+v}", n.Link)
		return
	}
	fmt.Fprintf(f, "Image(%s)", n.Link.Destination.String())
}

func (n Emphasis) Format(f fmt.State, c rune)      { formatWrapped(f, c, "Emphasis", n.Content) }
func (n Highlight) Format(f fmt.State, c rune)     { formatWrapped(f, c, "Highlight", n.Content) }
func (n Strikethrough) Format(f fmt.State, c rune) { formatWrapped(f, c, "Strikethrough", n.Content) }
func (n Sub) Format(f fmt.State, c rune)           { formatWrapped(f, c, "Sub", n.Content) }
func (n Sup) Format(f fmt.State, c rune)           { formatWrapped(f, c, "Sup", n.Content) }

func formatLeaf(f fmt.State, c rune, label, text string) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s{%q}", label, text)
		return
	}
	fmt.Fprint(f, label)
}

func formatWrapped(f fmt.State, c rune, label string, content Inlines) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s{content:%+v}", label, content)
		return
	}
	fmt.Fprint(f, label)
}

func (n Heading) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "Heading{level:%d content:%+v}", n.Level(), n.Content)
		return
	}
	fmt.Fprintf(f, "Heading(%d)", n.Level())
}

func (n Paragraph) Format(f fmt.State, c rune)  { fmt.Fprint(f, "Paragraph") }
func (n Blockquote) Format(f fmt.State, c rune) { fmt.Fprint(f, "Blockquote") }

func (n UnorderedListItem) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "UnorderedListItem(%s)", n.Bullet.String())
}

func (n OrderedListItem) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "OrderedListItem(%s)", n.Number.String())
}

func (n TaskListItem) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "TaskListItem(checked=%v)", n.Checked())
}

func (n FencedCodeBlock) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "FencedCodeBlock{info:%q content:%q}", n.InfoString.String(), n.Content.String())
		return
	}
	fmt.Fprint(f, "FencedCodeBlock")
}

func (n HorizontalRule) Format(f fmt.State, c rune) { fmt.Fprint(f, "HorizontalRule") }
func (n Table) Format(f fmt.State, c rune)          { fmt.Fprintf(f, "Table(%d rows)", len(n.Rows)) }
func (n Newline) Format(f fmt.State, c rune)        { fmt.Fprint(f, "Newline") }
