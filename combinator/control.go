package combinator

import "github.com/tapedown/tapedown/parse"

// ControlFlow is a zero-cost lookahead parser used to decide when
// repetition should stop. Reported true means "the stop condition holds,
// end the loop now"; reported false means "keep going". ControlFlow never
// advances the State it is given, regardless of what it reports.
type ControlFlow func(parse.State) bool

// WrapTry runs p as lookahead without consuming input, reporting true
// ("stop") iff p Continues, false ("keep going") iff p Breaks. This is how
// a terminator token parser (e.g. Token("]")) becomes a loop-stop signal:
// Sequence's terminator argument fires exactly when the upcoming
// characters would match it.
func WrapTry[A any](p parse.Parser[A]) ControlFlow {
	return func(s parse.State) bool {
		return p(s).Ok()
	}
}

// Flip is ControlFlow's logical negation: where cf says stop, Flip(cf)
// says keep going, and vice versa.
func Flip(cf ControlFlow) ControlFlow {
	return func(s parse.State) bool { return !cf(s) }
}

// noop never signals termination; the default ControlFlow for combinators
// (Lines) whose terminator is optional.
func noop(parse.State) bool { return false }
