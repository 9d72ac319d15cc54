package tape

import "strings"

// Tape is a finite ordered sequence of FatChar. All operations are
// non-destructive: they return a new Tape value (itself just a slice
// header), never mutate the receiver's backing array, and never mutate a
// FatChar in place.
//
// Re-slicing a Tape to take a prefix, suffix, or sub-range is O(1): Go slice
// headers alias their backing array, giving the same shared immutable
// slice structural sharing as the teacher's internal/scanio.Token
// windowing over an arena.
type Tape []FatChar

// New builds a Tape from a source string, stamping each character with its
// Position under a left-to-right scan starting at the zero Position.
func New(source string) Tape {
	runes := []rune(source)
	t := make(Tape, len(runes))
	pos := Position{}
	for i, r := range runes {
		t[i] = FatChar{Value: r, Position: pos}
		pos = pos.Advance(r)
	}
	return t
}

// IsEmpty reports whether the tape has no characters left.
func (t Tape) IsEmpty() bool { return len(t) == 0 }

// Head returns the first character and true, or the zero FatChar and false
// if the tape is empty.
func (t Tape) Head() (FatChar, bool) {
	if len(t) == 0 {
		return FatChar{}, false
	}
	return t[0], true
}

// Uncons splits the tape into its head character and the remaining tail.
// Returns ok=false if the tape is empty, in which case tail is the receiver
// unchanged.
func (t Tape) Uncons() (head FatChar, tail Tape, ok bool) {
	if len(t) == 0 {
		return FatChar{}, t, false
	}
	return t[0], t[1:], true
}

// Take returns the first n characters (or fewer, if the tape is shorter) and
// the remainder.
func (t Tape) Take(n int) (prefix, rest Tape) {
	if n > len(t) {
		n = len(t)
	}
	if n < 0 {
		n = 0
	}
	return t[:n], t[n:]
}

// SplitPrefix matches s character-by-character against the head of the
// tape. On a full match it returns the matched prefix and the remainder and
// ok=true; otherwise it returns the zero Tape, the receiver unchanged, and
// ok=false.
func (t Tape) SplitPrefix(s string) (prefix, rest Tape, ok bool) {
	runes := []rune(s)
	if len(runes) > len(t) {
		return nil, t, false
	}
	for i, r := range runes {
		if t[i].Value != r {
			return nil, t, false
		}
	}
	return t[:len(runes)], t[len(runes):], true
}

// Concat returns a new Tape holding the receiver's characters followed by
// other's. If either operand is empty the other is returned as is;
// otherwise it allocates, since the two operands are not generally
// adjacent within a shared backing array.
func (t Tape) Concat(other Tape) Tape {
	if len(t) == 0 {
		return other
	}
	if len(other) == 0 {
		return t
	}
	out := make(Tape, 0, len(t)+len(other))
	out = append(out, t...)
	out = append(out, other...)
	return out
}

// Filter returns a new Tape holding only the characters for which keep
// returns true, preserving relative order and original Positions.
func (t Tape) Filter(keep func(FatChar) bool) Tape {
	out := make(Tape, 0, len(t))
	for _, c := range t {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// MapLines splits the tape on newline characters (each line retains its
// trailing '\n', except possibly the last line), applies fn to each line,
// and rejoins the results in order.
func (t Tape) MapLines(fn func(Tape) Tape) Tape {
	var out Tape
	for len(t) > 0 {
		i := t.indexNewline()
		var line Tape
		if i < 0 {
			line, t = t, nil
		} else {
			line, t = t[:i+1], t[i+1:]
		}
		out = out.Concat(fn(line))
	}
	return out
}

func (t Tape) indexNewline() int {
	for i, c := range t {
		if c.Value == '\n' {
			return i
		}
	}
	return -1
}

// Equal reports semantic equality: two tapes are equal iff they carry the
// same run of character values, irrespective of Position.
// This is the comparison used by the no-progress guard in combinator.Sequence.
func (t Tape) Equal(other Tape) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i].Value != other[i].Value {
			return false
		}
	}
	return true
}

// String renders the tape's characters back to a plain string, with no
// position information. Used for losslessness checks (mdast.Reconstruct)
// and debug output.
func (t Tape) String() string {
	var sb strings.Builder
	sb.Grow(len(t))
	for _, c := range t {
		sb.WriteRune(c.Value)
	}
	return sb.String()
}

// StartPosition returns the Position of the tape's first character, or the
// zero Position if the tape is empty.
func (t Tape) StartPosition() Position {
	if len(t) == 0 {
		return Position{}
	}
	return t[0].Position
}
