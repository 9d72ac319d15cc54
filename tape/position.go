// Package tape implements a position-annotated character stream: the
// immutable input substrate that the parse and combinator packages consume.
package tape

import "fmt"

// Position locates a single character within some original source text.
// The zero Position is (0,0,0), the position of the first character of any
// source.
type Position struct {
	Offset int // character offset from the start of the source
	Column int // column within the current line, reset by newline
	Line   int // line number, incremented by newline
}

// Advance returns the Position of the character following the receiver,
// given that the receiver's own character was c.
func (p Position) Advance(c rune) Position {
	p.Offset++
	if c == '\n' {
		p.Column = 0
		p.Line++
	} else {
		p.Column++
	}
	return p
}

// Format supports "%v" printing as "line:column" and "%+v" as the full
// triple, in the teacher's terse-default/verbose-debug style (see
// scandown/fmt.go's Block.Format).
func (p Position) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "Position{Offset:%v Column:%v Line:%v}", p.Offset, p.Column, p.Line)
		return
	}
	fmt.Fprintf(f, "%v:%v", p.Line, p.Column)
}
