package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/markdown"
	"github.com/tapedown/tapedown/mdast"
)

func TestParseHeadingWithExplicitID(t *testing.T) {
	src := "## Title {custom-id}\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	require.Len(t, doc.Blocks, 2)
	h, ok := doc.Blocks[0].(mdast.Heading)
	require.True(t, ok)
	assert.Equal(t, 2, h.Level())
	require.NotNil(t, h.ID)
	assert.Equal(t, "custom-id", h.ID.Text.String())
	assert.Equal(t, "custom-id", h.Slug())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseHeadingWithoutID(t *testing.T) {
	doc, _ := markdown.Parse("# Hello World\n")
	h := doc.Blocks[0].(mdast.Heading)
	assert.Nil(t, h.ID)
	assert.Equal(t, "hello-world", h.Slug())
}

func TestParseParagraphStopsAtBlankLine(t *testing.T) {
	src := "one line\ntwo line\n\nnext para\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	require.Len(t, doc.Blocks, 4)
	p, ok := doc.Blocks[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "one line\ntwo line", p.Content.Tokens().String())
	_, isNL1 := doc.Blocks[1].(mdast.Newline)
	_, isNL2 := doc.Blocks[2].(mdast.Newline)
	assert.True(t, isNL1)
	assert.True(t, isNL2)
	p2, ok := doc.Blocks[3].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "next para\n", p2.Content.Tokens().String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseUnorderedListItem(t *testing.T) {
	src := "- one\n  more\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	li, ok := doc.Blocks[0].(mdast.UnorderedListItem)
	require.True(t, ok)
	assert.Equal(t, "-", li.Bullet.String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseOrderedListItem(t *testing.T) {
	doc, final := markdown.Parse("12. item text\n")
	require.True(t, final.Tape.IsEmpty())
	li, ok := doc.Blocks[0].(mdast.OrderedListItem)
	require.True(t, ok)
	assert.Equal(t, "12", li.Number.String())
}

func TestOrderedListItemBodyIsDeIndentedAndTokensReconstructExactly(t *testing.T) {
	src := "1. first\n   second\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	li, ok := doc.Blocks[0].(mdast.OrderedListItem)
	require.True(t, ok)
	require.Len(t, li.Content, 1)
	p, ok := li.Content[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "first\nsecond\n", p.Content.Tokens().String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestTaskListItemBodyIsDeIndentedAndTokensReconstructExactly(t *testing.T) {
	src := "[ ] first\n    second\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	ti, ok := doc.Blocks[0].(mdast.TaskListItem)
	require.True(t, ok)
	require.Len(t, ti.Content, 1)
	p, ok := ti.Content[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "first\nsecond\n", p.Content.Tokens().String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseTaskListItem(t *testing.T) {
	doc, _ := markdown.Parse("[x] done thing\n")
	ti, ok := doc.Blocks[0].(mdast.TaskListItem)
	require.True(t, ok)
	assert.True(t, ti.Checked())
}

func TestParseTaskListItemUnchecked(t *testing.T) {
	doc, _ := markdown.Parse("[ ] todo thing\n")
	ti, ok := doc.Blocks[0].(mdast.TaskListItem)
	require.True(t, ok)
	assert.False(t, ti.Checked())
}

func TestParseBlockquoteStopsAtBlankLine(t *testing.T) {
	src := "> one\n> two\n\nafter\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	bq, ok := doc.Blocks[0].(mdast.Blockquote)
	require.True(t, ok)
	require.Len(t, bq.Markers, 2)
	assert.Equal(t, "> ", bq.Markers[0].String())
	assert.Equal(t, "> ", bq.Markers[1].String())
	require.Len(t, bq.Content, 1)
	p0, ok := bq.Content[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "one\ntwo", p0.Content.Tokens().String())

	require.Len(t, doc.Blocks, 4)
	_, isNL1 := doc.Blocks[1].(mdast.Newline)
	_, isNL2 := doc.Blocks[2].(mdast.Newline)
	assert.True(t, isNL1)
	assert.True(t, isNL2)
	p, ok := doc.Blocks[3].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "after\n", p.Content.Tokens().String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

// TestBlockquoteAggregationStripsLeadersAcrossLines covers a three-line
// blockquote that de-prefixes to "A1 Red\nA2 Blue\nA3 Green" with trailing
// whitespace trimmed, leaving the remaining tape starting at the blank
// line separating it from the next blockquote.
func TestBlockquoteAggregationStripsLeadersAcrossLines(t *testing.T) {
	src := "> A1 Red\n> A2 Blue\n> A3 Green\n\n> B1 Alpha\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())

	bq, ok := doc.Blocks[0].(mdast.Blockquote)
	require.True(t, ok)
	require.Len(t, bq.Content, 1)
	p, ok := bq.Content[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "A1 Red\nA2 Blue\nA3 Green", p.Content.Tokens().String())

	require.True(t, len(doc.Blocks) >= 3)
	_, isNL1 := doc.Blocks[1].(mdast.Newline)
	_, isNL2 := doc.Blocks[2].(mdast.Newline)
	assert.True(t, isNL1, "the blank line after the quote is left for the dispatcher")
	assert.True(t, isNL2, "the blank line after the quote is left for the dispatcher")

	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseHorizontalRule(t *testing.T) {
	doc, final := markdown.Parse("---\n")
	require.True(t, final.Tape.IsEmpty())
	_, ok := doc.Blocks[0].(mdast.HorizontalRule)
	assert.True(t, ok)
}

func TestHorizontalRuleRejectsTrailingText(t *testing.T) {
	doc, _ := markdown.Parse("-- not a rule\n")
	_, ok := doc.Blocks[0].(mdast.HorizontalRule)
	assert.False(t, ok)
}

func TestParseFencedCodeBlock(t *testing.T) {
	src := "```go\nfmt.Println(1)\n```\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	fcb, ok := doc.Blocks[0].(mdast.FencedCodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go\n", fcb.InfoString.String())
	assert.Equal(t, "fmt.Println(1)\n", fcb.Content.String())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestFencedCodeBlockUnterminatedFallsThroughToParagraph(t *testing.T) {
	doc, _ := markdown.Parse("```go\nno closing fence\n")
	_, ok := doc.Blocks[0].(mdast.FencedCodeBlock)
	assert.False(t, ok)
}

func TestReconstructRoundTripsSource(t *testing.T) {
	src := "# Heading\n\nA paragraph with *emphasis* and a [link](http://x).\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	assert.Equal(t, src, mdast.Reconstruct(doc))
}
