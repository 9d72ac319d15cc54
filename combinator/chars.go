// Package combinator implements a standard combinator library over
// package parse's generic Parser monad: character/text primitives, tuple
// combinators, bounded repetition with a no-progress guard and iteration
// ceiling, bounded sub-parsing, indentation-aware line aggregation, and
// control-flow (lookahead) parsers. It knows nothing about Markdown.
package combinator

import (
	"unicode"

	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// AnyChar consumes and returns one character, Breaking only at end of input.
func AnyChar(s parse.State) parse.Outcome[tape.FatChar] {
	c, tail, ok := s.Tape.Uncons()
	if !ok {
		return parse.Break[tape.FatChar](s)
	}
	return parse.Continue(c, s.WithTape(tail))
}

// Char consumes one character equal to c, or Breaks.
func Char(c rune) parse.Parser[tape.FatChar] {
	return CharIf(func(v rune) bool { return v == c })
}

// CharIf consumes one character for which pred returns true, or Breaks
// (including on empty input).
func CharIf(pred func(rune) bool) parse.Parser[tape.FatChar] {
	return func(s parse.State) parse.Outcome[tape.FatChar] {
		c, tail, ok := s.Tape.Uncons()
		if !ok || !pred(c.Value) {
			return parse.Break[tape.FatChar](s)
		}
		return parse.Continue(c, s.WithTape(tail))
	}
}

// Token consumes the exact literal string lit from the head of the tape,
// returning the matched sub-tape (so callers retain delimiter positions).
func Token(lit string) parse.Parser[tape.Tape] {
	return func(s parse.State) parse.Outcome[tape.Tape] {
		prefix, rest, ok := s.Tape.SplitPrefix(lit)
		if !ok {
			return parse.Break[tape.Tape](s)
		}
		return parse.Continue(prefix, s.WithTape(rest))
	}
}

// Whitespace consumes zero or more spaces/tabs (never newlines), returning
// the consumed run (possibly empty).
func Whitespace(s parse.State) parse.Outcome[tape.Tape] {
	i := 0
	for i < len(s.Tape) && isInlineSpace(s.Tape[i].Value) {
		i++
	}
	prefix, rest := s.Tape.Take(i)
	return parse.Continue(prefix, s.WithTape(rest))
}

func isInlineSpace(r rune) bool { return r == ' ' || r == '\t' }

// RestOfLine consumes one or more non-newline characters, Breaking if the
// very next character is a newline or the input is empty.
func RestOfLine(s parse.State) parse.Outcome[tape.Tape] {
	i := 0
	for i < len(s.Tape) && s.Tape[i].Value != '\n' {
		i++
	}
	if i == 0 {
		return parse.Break[tape.Tape](s)
	}
	prefix, rest := s.Tape.Take(i)
	return parse.Continue(prefix, s.WithTape(rest))
}

// Newline consumes a single '\n', tolerating ("CRLF tolerance") an
// immediately preceding '\r' as part of the match.
func Newline(s parse.State) parse.Outcome[tape.Tape] {
	start := s.Tape
	i := 0
	if i < len(start) && start[i].Value == '\r' {
		i++
	}
	if i >= len(start) || start[i].Value != '\n' {
		return parse.Break[tape.Tape](s)
	}
	i++
	prefix, rest := start.Take(i)
	return parse.Continue(prefix, s.WithTape(rest))
}

// Space consumes a single ' ' or '\t'.
var Space = CharIf(isInlineSpace)

// Digit consumes a single decimal digit.
var Digit = CharIf(unicode.IsDigit)

// IsLetter, IsNumber, IsNewline, IsWhitespace match the host's standard
// Unicode character classification.
func IsLetter(r rune) bool    { return unicode.IsLetter(r) }
func IsNumber(r rune) bool    { return unicode.IsNumber(r) }
func IsNewline(r rune) bool   { return r == '\n' || r == '\r' }
func IsWhitespace(r rune) bool { return unicode.IsSpace(r) }
