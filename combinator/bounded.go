package combinator

import (
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// Bounded runs extract against the outer state to carve out a sub-tape,
// then runs execute over a *fresh* State (empty DebugScopes, no
// accumulated diagnostics) scoped to exactly that sub-tape. This is how a
// block-level parser (say, a table cell) hands a slice of the document
// to an independent inline-grammar run without either side seeing the
// other's debug trail.
//
// The outer State advances past whatever extract consumed regardless of
// whether execute succeeds: Bounded's job is isolating where execute looks,
// not gating whether the outer parse proceeds. Bounded itself Breaks only
// if extract Breaks; a Break from execute still yields Continue, carrying
// execute's own Break-state inside innerState so callers can inspect why
// the bounded sub-parse failed.
type BoundedResult[A any] struct {
	Value      A
	InnerState parse.State
	InnerOK    bool
}

// Bounded isolates the sub-tape matched by extract and runs execute over
// it alone, returning execute's outcome without letting it affect the
// outer tape position beyond what extract itself consumed.
func Bounded[E, A any](extract parse.Parser[E], toSubTape func(E) tape.Tape, execute parse.Parser[A]) parse.Parser[BoundedResult[A]] {
	return func(s parse.State) parse.Outcome[BoundedResult[A]] {
		extracted, outer, ok := extract(s).Get()
		if !ok {
			return parse.Break[BoundedResult[A]](s)
		}

		inner := parse.NewState("")
		inner.Tape = toSubTape(extracted)

		value, innerState, innerOK := execute(inner).Get()
		return parse.Continue(BoundedResult[A]{
			Value:      value,
			InnerState: innerState,
			InnerOK:    innerOK,
		}, outer)
	}
}
