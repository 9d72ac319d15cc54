package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/markdown"
	"github.com/tapedown/tapedown/mdast"
)

func TestParseTableWithAlignment(t *testing.T) {
	src := "a|b\n:-|-:\n1|2\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	require.Len(t, doc.Blocks, 1)
	tbl, ok := doc.Blocks[0].(mdast.Table)
	require.True(t, ok)

	require.Len(t, tbl.Header.Cells, 2)
	assert.Equal(t, "a", tbl.Header.Cells[0].Content.Text.String())
	assert.Equal(t, "b", tbl.Header.Cells[1].Content.Text.String())

	require.Len(t, tbl.Separator.Cells, 2)
	assert.Equal(t, mdast.AlignLeft, tbl.Separator.Cells[0].Align)
	assert.Equal(t, mdast.AlignRight, tbl.Separator.Cells[1].Align)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "1", tbl.Rows[0].Cells[0].Content.Text.String())
	assert.Equal(t, "2", tbl.Rows[0].Cells[1].Content.Text.String())

	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestParseTableWithLeadingPipeAndCenterAlign(t *testing.T) {
	src := "|a|b|\n|:-:|:-:|\n"
	doc, final := markdown.Parse(src)
	require.True(t, final.Tape.IsEmpty())
	tbl, ok := doc.Blocks[0].(mdast.Table)
	require.True(t, ok)
	assert.Equal(t, "|", tbl.Header.LeadingPipe.String())
	assert.Equal(t, mdast.AlignCenter, tbl.Separator.Cells[0].Align)
	assert.Equal(t, mdast.AlignCenter, tbl.Separator.Cells[1].Align)
	assert.Equal(t, src, mdast.Reconstruct(doc))
}

func TestMalformedSeparatorFallsThroughToParagraph(t *testing.T) {
	doc, _ := markdown.Parse("a|b\nnot a separator\n")
	_, ok := doc.Blocks[0].(mdast.Table)
	assert.False(t, ok)
}

func TestLineWithoutPipeIsNotATable(t *testing.T) {
	doc, _ := markdown.Parse("just a plain line\n")
	_, ok := doc.Blocks[0].(mdast.Table)
	assert.False(t, ok)
}
