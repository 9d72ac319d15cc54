package tape

import "errors"

// ErrSliceRange is returned by Slice when the requested bounds fall outside
// the receiver tape.
var ErrSliceRange = errors.New("tape: slice range out of bounds")

// Slice returns the sub-tape t[i:j], or ErrSliceRange if the bounds are
// invalid. Unlike a bare Go slice expression, this never panics: callers in
// the combinator/markdown packages run on attacker-controlled source text,
// so out-of-range requests are a recoverable Break, not a programmer bug.
func (t Tape) Slice(i, j int) (Tape, error) {
	if i < 0 || j < i || j > len(t) {
		return nil, ErrSliceRange
	}
	return t[i:j], nil
}
