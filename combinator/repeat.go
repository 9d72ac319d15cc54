package combinator

import (
	"fmt"

	"github.com/tapedown/tapedown/parse"
)

// MaxIterations bounds any single Sequence loop, guarding against
// pathological grammars that never trip the no-progress guard. Exported
// and mutable so tests can lower it instead of looping the full default.
// Exceeding it terminates the loop, never alters the returned tree, and
// appends a diagnostic to the resulting State.
var MaxIterations = 1000

// SequenceOptions configures Sequence's three knobs.
type SequenceOptions struct {
	// AllowEmpty: if false, at least one iteration must succeed or the
	// overall parser Breaks.
	AllowEmpty bool
	// Terminator: when it reports true, the loop ends without consuming
	// the characters it looked at. Nil means "never terminates early".
	Terminator ControlFlow
}

// Sequence is the core repetition primitive: it repeats p, honoring
// AllowEmpty, Terminator, the no-progress guard, and MaxIterations. It
// returns every collected item.
func Sequence[A any](p parse.Parser[A], opts SequenceOptions) parse.Parser[[]A] {
	term := opts.Terminator
	if term == nil {
		term = noop
	}
	return func(s parse.State) parse.Outcome[[]A] {
		var items []A
		cur := s
		for iterations := 0; ; iterations++ {
			if iterations >= MaxIterations {
				cur = cur.NoteCeilingHit(fmt.Sprintf("combinator.Sequence: hit MaxIterations=%d", MaxIterations))
				break
			}
			if term(cur) {
				break
			}

			before := cur.Tape
			a, next, ok := p(cur).Get()
			if !ok {
				break
			}
			items = append(items, a)

			// no-progress guard: stop if the iteration left the tape
			// semantically unchanged, even though it "succeeded".
			if before.Equal(next.Tape) {
				cur = next
				break
			}
			cur = next
		}

		if !opts.AllowEmpty && len(items) == 0 {
			return parse.Break[[]A](s)
		}
		return parse.Continue(items, cur)
	}
}

// Many is Sequence with AllowEmpty=true and no terminator: zero or more.
func Many[A any](p parse.Parser[A]) parse.Parser[[]A] {
	return Sequence(p, SequenceOptions{AllowEmpty: true})
}

// Some is Sequence with AllowEmpty=false: one or more.
func Some[A any](p parse.Parser[A]) parse.Parser[[]A] {
	return Sequence(p, SequenceOptions{AllowEmpty: false})
}

// UnlessResult pairs the items collected before a terminator with the
// terminator's own value, when it fired and was captured.
type UnlessResult[A, T any] struct {
	Items      []A
	Terminator T
	Terminated bool
}

// ManyUnless repeats p zero or more times, stopping *before* an optional
// terminator (without consuming it).
func ManyUnless[A, T any](p parse.Parser[A], term parse.Parser[T]) parse.Parser[UnlessResult[A, T]] {
	return sequenceUnless(p, term, true)
}

// SomeUnless is ManyUnless requiring at least one item.
func SomeUnless[A, T any](p parse.Parser[A], term parse.Parser[T]) parse.Parser[UnlessResult[A, T]] {
	return sequenceUnless(p, term, false)
}

func sequenceUnless[A, T any](p parse.Parser[A], term parse.Parser[T], allowEmpty bool) parse.Parser[UnlessResult[A, T]] {
	return func(s parse.State) parse.Outcome[UnlessResult[A, T]] {
		items, s2, _ := Sequence(p, SequenceOptions{
			AllowEmpty: true,
			Terminator: WrapTry(term),
		})(s).Get()

		result := UnlessResult[A, T]{Items: items}
		if !allowEmpty && len(items) == 0 {
			return parse.Break[UnlessResult[A, T]](s)
		}
		if t, s3, ok := term(s2).Get(); ok {
			result.Terminator = t
			result.Terminated = true
			_ = s3 // terminator is peeked, not consumed: ManyUnless never eats it
		}
		return parse.Continue(result, s2)
	}
}

// EndResult pairs the items collected before a required, consumed
// terminator with the terminator's own value.
type EndResult[A, T any] struct {
	Items      []A
	Terminator T
}

// ManyUntilEnd repeats p zero or more times, then requires and consumes
// term, capturing its value. Breaks if term never matches.
func ManyUntilEnd[A, T any](p parse.Parser[A], term parse.Parser[T]) parse.Parser[EndResult[A, T]] {
	return sequenceUntilEnd(p, term, true)
}

// SomeUntilEnd is ManyUntilEnd requiring at least one item before term.
func SomeUntilEnd[A, T any](p parse.Parser[A], term parse.Parser[T]) parse.Parser[EndResult[A, T]] {
	return sequenceUntilEnd(p, term, false)
}

func sequenceUntilEnd[A, T any](p parse.Parser[A], term parse.Parser[T], allowEmpty bool) parse.Parser[EndResult[A, T]] {
	return func(s parse.State) parse.Outcome[EndResult[A, T]] {
		items, s2, _ := Sequence(p, SequenceOptions{
			AllowEmpty: true,
			Terminator: WrapTry(term),
		})(s).Get()
		if !allowEmpty && len(items) == 0 {
			return parse.Break[EndResult[A, T]](s)
		}
		t, s3, ok := term(s2).Get()
		if !ok {
			return parse.Break[EndResult[A, T]](s2)
		}
		return parse.Continue(EndResult[A, T]{Items: items, Terminator: t}, s3)
	}
}
