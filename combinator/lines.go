package combinator

import (
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// LinesOptions configures Lines.
type LinesOptions struct {
	// LineStart recognizes and consumes each line's leader (e.g. a
	// blockquote's "> " or a list item's indent). Its result is discarded;
	// only the Column at which it leaves the tape matters, used as the
	// guard every subsequent line's leader must match.
	LineStart parse.Parser[tape.Tape]
	// Terminator, if non-nil, is checked before LineStart on every line;
	// firing ends the aggregation without consuming that line.
	Terminator ControlFlow
	// TrimContent trims leading/trailing inline whitespace from each
	// line's content before accumulating it.
	TrimContent bool
}

// LinesResult is what Lines produces: the aggregated content tape and the
// leader column the first line established.
type LinesResult struct {
	Content      tape.Tape
	LeaderColumn int
}

// Lines aggregates consecutive lines sharing a common leader column: it
// repeats LineStart + rest-of-line + newline, recording the column at
// which the first line's leader left the tape,
// and requiring every subsequent line's leader to land at that same
// column. Trailing whitespace trimmed from the final line is put back
// into the outer stream rather than discarded, since it was never really
// part of this block.
func Lines(opts LinesOptions) parse.Parser[LinesResult] {
	term := opts.Terminator
	if term == nil {
		term = noop
	}
	lineStart := opts.LineStart
	if lineStart == nil {
		lineStart = parse.Pure(tape.Tape(nil))
	}

	return func(s parse.State) parse.Outcome[LinesResult] {
		var content tape.Tape
		leaderColumn := -1
		cur := s
		matched := false

		for {
			if term(cur) {
				break
			}

			probe := cur
			_, afterLeader, ok := lineStart(probe).Get()
			if !ok {
				break
			}
			col := afterLeader.Tape.StartPosition().Column
			if leaderColumn == -1 {
				leaderColumn = col
			} else if col != leaderColumn {
				break
			}

			rest, afterRest, ok := RestOfLine(afterLeader).Get()
			lineTape := rest
			next := afterRest
			if !ok {
				// a blank line has no RestOfLine match; treat as empty content.
				next = afterLeader
				lineTape = nil
			}

			if opts.TrimContent {
				lineTape = trimTape(lineTape)
			}
			content = content.Concat(lineTape)

			if nlTape, afterNL, ok := Newline(next).Get(); ok {
				content = content.Concat(nlTape)
				next = afterNL
			} else {
				// end of input with no trailing newline: this is the last line.
				cur = next
				matched = true
				break
			}

			cur = next
			matched = true
		}

		if !matched {
			return parse.Break[LinesResult](s)
		}

		trimmed, putBack := trimTrailingWithRemainder(content)
		if len(putBack) > 0 {
			cur = cur.WithTape(putBack.Concat(cur.Tape))
		}

		return parse.Continue(LinesResult{Content: trimmed, LeaderColumn: leaderColumn}, cur)
	}
}

func trimTape(t tape.Tape) tape.Tape {
	start := 0
	for start < len(t) && isInlineSpace(t[start].Value) {
		start++
	}
	end := len(t)
	for end > start && isInlineSpace(t[end-1].Value) {
		end--
	}
	return t[start:end]
}

// trimTrailingWithRemainder trims all trailing whitespace, including
// newlines, from t, returning what was trimmed so the caller can put it
// back onto the outer stream instead of discarding it.
func trimTrailingWithRemainder(t tape.Tape) (trimmed, removed tape.Tape) {
	end := len(t)
	for end > 0 && isTrailingWhitespace(t[end-1].Value) {
		end--
	}
	return t[:end], t[end:]
}

func isTrailingWhitespace(r rune) bool {
	return isInlineSpace(r) || r == '\n' || r == '\r'
}
