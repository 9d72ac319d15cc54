package parse

// Outcome is the result of one parser invocation: either Continue(value,
// new state) or Break(state at failure). Break never observes any
// state produced mid-way through the failed branch: combinators that
// backtrack (Or, Options, Optional) always resume from the State they were
// given, not from anything a failed sub-parser touched.
type Outcome[A any] struct {
	ok    bool
	value A
	state State
}

// Continue builds a successful Outcome.
func Continue[A any](value A, state State) Outcome[A] {
	return Outcome[A]{ok: true, value: value, state: state}
}

// Break builds a failed Outcome, carrying the state as it was at the point
// of failure (for diagnostics only; callers must not treat it as "progress").
func Break[A any](state State) Outcome[A] {
	return Outcome[A]{ok: false, state: state}
}

// Ok reports whether the Outcome is a Continue.
func (o Outcome[A]) Ok() bool { return o.ok }

// Value returns the Continue value. Only meaningful when Ok() is true.
func (o Outcome[A]) Value() A { return o.value }

// State returns the resulting State: the post-consumption state on
// Continue, or the state-at-failure on Break.
func (o Outcome[A]) State() State { return o.state }

// Get returns (value, state, ok) in one call, for terse use at call sites.
func (o Outcome[A]) Get() (A, State, bool) { return o.value, o.state, o.ok }
