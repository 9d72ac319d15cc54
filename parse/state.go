// Package parse implements the generic parser-combinator monad: a
// Parser[A] threads a State through composable actions, backtracking freely
// on failure. It knows nothing about Markdown; the grammar lives in
// package markdown, built from package combinator's primitives.
package parse

import "github.com/tapedown/tapedown/tape"

// State is a parser's view of unconsumed input plus a diagnostic scope
// trail. DebugScopes never influences parsing outcomes; it exists only
// so a failed parse can report where it got deepest, the same way
// scandown.BlockStack exposes its stack for %+v-style diagnostic
// printing rather than for control flow.
type State struct {
	Tape        tape.Tape
	DebugScopes []string

	ceilingHits []string // diagnostics appended when combinator.MaxIterations is exceeded, or Evaluate is given a nil Parser
}

// NewState builds the initial State for a source string.
func NewState(source string) State {
	return State{Tape: tape.New(source)}
}

// WithTape returns a copy of the State with a different Tape, preserving
// DebugScopes and accumulated diagnostics.
func (s State) WithTape(t tape.Tape) State {
	s.Tape = t
	return s
}

// PushScope returns a copy of the State with label appended to DebugScopes.
func (s State) PushScope(label string) State {
	scopes := make([]string, len(s.DebugScopes)+1)
	copy(scopes, s.DebugScopes)
	scopes[len(scopes)-1] = label
	s.DebugScopes = scopes
	return s
}

// Diagnostics returns the debug-scope trail followed by any
// iteration-ceiling notices accumulated while producing this State. It is
// purely informational and never affects parsing outcomes.
func (s State) Diagnostics() []string {
	out := make([]string, 0, len(s.DebugScopes)+len(s.ceilingHits))
	out = append(out, s.DebugScopes...)
	out = append(out, s.ceilingHits...)
	return out
}

// noteCeilingHit records a diagnostic notice: a repetition combinator
// hitting combinator.MaxIterations, or Evaluate being given a nil Parser.
// Package combinator reaches it through the exported NoteCeilingHit.
func (s State) noteCeilingHit(msg string) State {
	hits := make([]string, len(s.ceilingHits)+1)
	copy(hits, s.ceilingHits)
	hits[len(hits)-1] = msg
	s.ceilingHits = hits
	return s
}

// NoteCeilingHit is the exported form of noteCeilingHit, used by package
// combinator's repetition guard.
func (s State) NoteCeilingHit(msg string) State { return s.noteCeilingHit(msg) }
