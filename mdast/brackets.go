package mdast

import "github.com/tapedown/tapedown/tape"

// InSquareBrackets wraps a value parsed between '[' and ']', retaining
// both bracket tokens so the span reconstructs losslessly.
type InSquareBrackets[T any] struct {
	Open    tape.Tape // "["
	Content T
	Close   tape.Tape // "]"
}

// InDoubleQuotes wraps a value parsed between two '"' tokens, used by
// Link's optional title.
type InDoubleQuotes[T any] struct {
	Open    tape.Tape // `"`
	Content T
	Close   tape.Tape // `"`
}
