// Package markdown implements the scope-aware Markdown grammar: the inline
// parser (inline.go) and block dispatcher (block.go, table.go) composed
// from package combinator's primitives over package mdscope's scope
// environment, producing package mdast's lossless tree.
package markdown

import (
	"github.com/tapedown/tapedown/combinator"
	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/mdscope"
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// Parse is the sole public entry point: it builds the initial State from
// source, runs the block grammar to exhaustion, and returns the
// resulting Document plus the final State, and never panics. A non-empty
// State.Tape on return means parsing stopped before consuming the whole
// source; there is no partial-tree recovery, so the caller inspects
// final_state.Tape/Diagnostics() for what remains.
func Parse(source string) (*mdast.Document, parse.State) {
	s := parse.NewState(source)
	blocks, final := ParseBlocks(s)
	return &mdast.Document{Blocks: blocks}, final
}

// ParseBlocks repeats Block over s until it Breaks, the tape is
// exhausted, or an iteration makes no progress (the same no-progress
// guard combinator.Sequence applies at the repetition-primitive level,
// mirrored here at the block-dispatch level since Block is not itself
// built from combinator.Sequence).
func ParseBlocks(s parse.State) (mdast.Blocks, parse.State) {
	var blocks mdast.Blocks
	cur := s
	for !cur.Tape.IsEmpty() {
		b, next, ok := Block(cur).Get()
		if !ok {
			break
		}
		blocks = append(blocks, b)
		if next.Tape.Equal(cur.Tape) {
			break
		}
		cur = next
	}
	return blocks, cur
}

// parseBlocksFromTape runs ParseBlocks over a fresh State scoped to t
// (empty DebugScopes), the bounded sub-parsing pattern applied to a
// Blockquote/ListItem's captured body.
func parseBlocksFromTape(t tape.Tape) mdast.Blocks {
	st := parse.NewState("")
	st.Tape = t
	blocks, _ := ParseBlocks(st)
	return blocks
}

// parseInlineLine runs InlineRun over a fresh, top-level-scoped State
// scoped to t, the same bounded sub-parsing pattern applied to a
// Paragraph's or Heading's captured inline content.
func parseInlineLine(t tape.Tape) mdast.Inlines {
	st := parse.NewState("")
	st.Tape = t
	content, _, _ := InlineRun(mdscope.Env{})(st).Get()
	return content
}

// Block is the block dispatcher: FencedCodeBlock, Heading, ListItem
// (TaskListItem/UnorderedListItem/OrderedListItem), Blockquote,
// HorizontalRule, Table, Paragraph, in that order. A leading blank-line
// check is folded in ahead of the seven named alternatives so that a
// Newline block variant has a producer; consuming blank lines is
// bookkeeping between blocks, not one of the dispatcher's named content
// alternatives.
func Block(s parse.State) parse.Outcome[mdast.Block] {
	if v, s2, ok := blankLineParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := fencedCodeBlockParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := headingParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := taskListItemParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := unorderedListItemParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := orderedListItemParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := blockquoteParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := horizontalRuleParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := tableParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	if v, s2, ok := paragraphParser(s).Get(); ok {
		return parse.Continue[mdast.Block](v, s2)
	}
	return parse.Break[mdast.Block](s)
}

func blankLineParser(s parse.State) parse.Outcome[mdast.Newline] {
	nl, s2, ok := combinator.Newline(s).Get()
	if !ok {
		return parse.Break[mdast.Newline](s)
	}
	return parse.Continue(mdast.Newline{Char: nl}, s2)
}
