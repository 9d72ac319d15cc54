package combinator

import (
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// Delimiter matches a run of length at least min of the same rune d,
// returning the matched run. Ported from the teacher's scandown.delimiter
// (scandown/block.go), which scans a byte run of a single marker rune to
// recognize rulers, fences, and heading markers; here it becomes a
// reusable rune-based Parser instead of an inline loop.
func Delimiter(d rune, min int) parse.Parser[tape.Tape] {
	return func(s parse.State) parse.Outcome[tape.Tape] {
		i := 0
		for i < len(s.Tape) && s.Tape[i].Value == d {
			i++
		}
		if i < min {
			return parse.Break[tape.Tape](s)
		}
		prefix, rest := s.Tape.Take(i)
		return parse.Continue(prefix, s.WithTape(rest))
	}
}

// Fence matches a fenced-code-block delimiter line: three or more
// backticks or tildes, per CommonMark and scandown.fence's treatment of
// Codefence blocks. Reports the fence rune and its width alongside the
// matched tape.
type FenceMark struct {
	Rune  rune
	Width int
	Token tape.Tape
}

func Fence(s parse.State) parse.Outcome[FenceMark] {
	for _, d := range []rune{'`', '~'} {
		if tok, next, ok := Delimiter(d, 3)(s).Get(); ok {
			return parse.Continue(FenceMark{Rune: d, Width: len(tok), Token: tok}, next)
		}
	}
	return parse.Break[FenceMark](s)
}

// Ruler matches a thematic-break line marker: three or more of the same
// rune drawn from {-, *, _}, mirroring scandown.ruler's recognition of
// horizontal-rule blocks.
func Ruler(s parse.State) parse.Outcome[tape.Tape] {
	for _, d := range []rune{'-', '*', '_'} {
		if tok, next, ok := Delimiter(d, 3)(s).Get(); ok {
			return parse.Continue(tok, next)
		}
	}
	return parse.Break[tape.Tape](s)
}

// Ordinal matches an ordered-list item marker's number (one or more
// digits), mirroring scandown.ordinal's numeric-prefix recognition for
// List/Item blocks. Returns the matched digits and their parsed value.
type OrdinalMark struct {
	Value int
	Token tape.Tape
}

func Ordinal(s parse.State) parse.Outcome[OrdinalMark] {
	i := 0
	for i < len(s.Tape) && s.Tape[i].Value >= '0' && s.Tape[i].Value <= '9' {
		i++
	}
	if i == 0 {
		return parse.Break[OrdinalMark](s)
	}
	prefix, rest := s.Tape.Take(i)
	value := 0
	for _, c := range prefix {
		value = value*10 + int(c.Value-'0')
	}
	return parse.Continue(OrdinalMark{Value: value, Token: prefix}, s.WithTape(rest))
}
