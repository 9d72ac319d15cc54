package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/markdown"
	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/mdscope"
	"github.com/tapedown/tapedown/parse"
)

func inlinesOf(t *testing.T, src string) mdast.Inlines {
	t.Helper()
	items, final, ok := markdown.InlineRun(mdscope.Env{})(parse.NewState(src)).Get()
	require.True(t, ok)
	require.True(t, final.Tape.IsEmpty(), "unconsumed: %q", final.Tape.String())
	return items
}

func TestInlineParsesLinkWithDestination(t *testing.T) {
	items := inlinesOf(t, "[link text](http://dev.nodeca.com)")
	require.Len(t, items, 1)
	link, ok := items[0].(mdast.Link)
	require.True(t, ok)
	assert.Equal(t, "link text", link.Text.Content.Tokens().String())
	assert.Equal(t, "(", link.OpenParen.String())
	assert.Equal(t, "http://dev.nodeca.com", link.Destination.String())
	assert.Nil(t, link.Title)
	assert.Equal(t, ")", link.CloseParen.String())
}

func TestInlineEmphasisSplitsSurroundingPlainText(t *testing.T) {
	items := inlinesOf(t, "Alpha *Beta Gamma* Delta")
	require.Len(t, items, 3)

	pt1, ok := items[0].(mdast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "Alpha ", pt1.Text.String())

	em, ok := items[1].(mdast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, "*", em.OpenDelim.String())
	assert.Equal(t, "*", em.CloseDelim.String())
	require.Len(t, em.Content, 1)
	inner, ok := em.Content[0].(mdast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "Beta Gamma", inner.Text.String())

	pt2, ok := items[2].(mdast.PlainText)
	require.True(t, ok)
	assert.Equal(t, " Delta", pt2.Text.String())
}

// TestInlineCodeToleratesLoneBacktickInsideLongerRun covers a two-backtick
// span whose content contains a lone backtick that doesn't close it.
func TestInlineCodeToleratesLoneBacktickInsideLongerRun(t *testing.T) {
	items := inlinesOf(t, "`` a ` b ``")
	require.Len(t, items, 1)
	code, ok := items[0].(mdast.InlineCode)
	require.True(t, ok)
	assert.Equal(t, "``", code.OpenTicks.String())
	assert.Equal(t, " a ` b ", code.Content.String())
	assert.Equal(t, "``", code.CloseTicks.String())
}

// TestInlineTripleAsteriskPreferredOverNestedSingleAndDouble checks that
// trying "***" before "**" before "*" produces one Emphasis wrapping
// PlainText("x"), not nested Emphasis nodes.
func TestInlineTripleAsteriskPreferredOverNestedSingleAndDouble(t *testing.T) {
	items := inlinesOf(t, "***x***")
	require.Len(t, items, 1)
	em, ok := items[0].(mdast.Emphasis)
	require.True(t, ok)
	assert.Equal(t, "***", em.OpenDelim.String())
	assert.Equal(t, "***", em.CloseDelim.String())
	require.Len(t, em.Content, 1)
	inner, ok := em.Content[0].(mdast.PlainText)
	require.True(t, ok)
	assert.Equal(t, "x", inner.Text.String())
}

// TestInlineUnmatchedDelimiterFallsBackToPlainText exercises why
// fallbackCharParser exists: an unpaired "*" can't open an Emphasis (no
// matching close), so it must still end up in the tree as literal text
// instead of stalling the whole run.
func TestInlineUnmatchedDelimiterFallsBackToPlainText(t *testing.T) {
	items := inlinesOf(t, "a * b")
	var reconstructed string
	for _, it := range items {
		reconstructed += it.Tokens().String()
	}
	assert.Equal(t, "a * b", reconstructed)

	var sawLoneAsterisk bool
	for _, it := range items {
		if pt, ok := it.(mdast.PlainText); ok && pt.Text.String() == "*" {
			sawLoneAsterisk = true
		}
	}
	assert.True(t, sawLoneAsterisk, "expected the unmatched '*' to surface as its own PlainText")
}

// TestUnorderedListItemBodyIsDeIndentedAndTokensReconstructExactly
// covers an item whose continuation lines are captured as one body,
// stopping before the next item. The captured Content is de-indented to
// the bullet's content column, with each stripped leader kept in
// Markers, so Content is normalized for recursive block parsing while
// Tokens still reconstructs the original source exactly.
func TestUnorderedListItemBodyIsDeIndentedAndTokensReconstructExactly(t *testing.T) {
	src := "- A1 Red\n  A2 Blue\n  A3 Green\n- B1 Alpha\n"
	block, next, ok := markdown.Block(parse.NewState(src)).Get()
	require.True(t, ok)
	li, ok := block.(mdast.UnorderedListItem)
	require.True(t, ok)
	require.Len(t, li.Content, 1)
	p, ok := li.Content[0].(mdast.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "A1 Red\nA2 Blue\nA3 Green\n", p.Content.Tokens().String())
	assert.Equal(t, "- B1 Alpha\n", next.Tape.String())
	assert.Equal(t, "- A1 Red\n  A2 Blue\n  A3 Green\n", li.Tokens().String())
}
