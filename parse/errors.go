package parse

import "errors"

// ErrNilParser's message is recorded in the final State's Diagnostics by
// Evaluate (which then returns a nil value, not a panic) when asked to run
// a nil Parser value, guarding the one real programmer-error case this
// package can detect.
var ErrNilParser = errors.New("parse: nil Parser")
