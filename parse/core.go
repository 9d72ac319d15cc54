package parse

// Parser is an opaque, composable parsing action: given a State, it
// produces an Outcome. The type parameter A is the value a successful
// parse yields.
type Parser[A any] func(State) Outcome[A]

// Pure builds a Parser that always succeeds with a, consuming nothing.
func Pure[A any](a A) Parser[A] {
	return func(s State) Outcome[A] { return Continue(a, s) }
}

// Fail builds a Parser that always Breaks, consuming nothing.
func Fail[A any]() Parser[A] {
	return func(s State) Outcome[A] { return Break[A](s) }
}

// AndThen runs p; on Continue it runs f(value) against the resulting state.
// A Break from p short-circuits without calling f.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s State) Outcome[B] {
		a, s2, ok := p(s).Get()
		if !ok {
			return Break[B](s2)
		}
		return f(a)(s2)
	}
}

// Map runs p and applies f to its value on success.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return AndThen(p, func(a A) Parser[B] { return Pure(f(a)) })
}

// Or runs p; on Break it runs q against the *original* state s, giving
// full backtracking semantics.
func Or[A any](p, q Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		if out := p(s); out.Ok() {
			return out
		}
		return q(s)
	}
}

// Options tries each parser in ps, left to right, returning the first
// Continue. If all Break, returns the Break produced by the last one.
func Options[A any](ps ...Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		var out Outcome[A]
		for _, p := range ps {
			out = p(s)
			if out.Ok() {
				return out
			}
		}
		if len(ps) == 0 {
			return Break[A](s)
		}
		return out
	}
}

// Either tags which side of an EitherOr succeeded.
type Either[A, B any] struct {
	IsLeft bool
	Left   A
	Right  B
}

// EitherOr is like Or, but tags the result Left (p) or Right (q) instead of
// unifying their value types.
func EitherOr[A, B any](p Parser[A], q Parser[B]) Parser[Either[A, B]] {
	return func(s State) Outcome[Either[A, B]] {
		if a, s2, ok := p(s).Get(); ok {
			return Continue(Either[A, B]{IsLeft: true, Left: a}, s2)
		}
		if b, s2, ok := q(s).Get(); ok {
			return Continue(Either[A, B]{Right: b}, s2)
		}
		return Break[Either[A, B]](s)
	}
}

// Optional runs p; if it Breaks, Optional Continues with the zero value and
// Present=false, leaving the state unchanged from before p ran.
func Optional[A any](p Parser[A]) Parser[OptValue[A]] {
	return func(s State) Outcome[OptValue[A]] {
		if a, s2, ok := p(s).Get(); ok {
			return Continue(OptValue[A]{Value: a, Present: true}, s2)
		}
		return Continue(OptValue[A]{}, s)
	}
}

// OptValue holds the result of Optional: Present is false when the
// wrapped parser broke.
type OptValue[A any] struct {
	Value   A
	Present bool
}

// Get returns the value and whether it was present, C-style.
func (o OptValue[A]) Get() (A, bool) { return o.Value, o.Present }

// PutBack prepends t to the current input before running p, the inverse
// of consumption, used when a combinator over-reads and must return
// characters to the stream.
func PutBack[A any](t State, p Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		merged := s.WithTape(t.Tape.Concat(s.Tape))
		return p(merged)
	}
}

// WithDebugLabel wraps p so that label is pushed onto DebugScopes on both
// Continue and Break, for diagnostic purposes only: this never changes
// parsing outcomes, only the DebugScopes trail of the resulting State.
func WithDebugLabel[A any](label string, p Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		a, s2, ok := p(s.PushScope(label)).Get()
		if !ok {
			return Break[A](s2)
		}
		return Continue(a, s2)
	}
}

// Evaluate is the sole root entry point: it builds the initial State from
// source, runs p, and returns the parsed value (nil on Break) plus the
// final State. It never panics.
func Evaluate[A any](source string, p Parser[A]) (*A, State) {
	s := NewState(source)
	if p == nil {
		return nil, s.noteCeilingHit(ErrNilParser.Error())
	}
	a, s2, ok := p(s).Get()
	if !ok {
		return nil, s2
	}
	return &a, s2
}
