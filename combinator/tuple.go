package combinator

import "github.com/tapedown/tapedown/parse"

// Pair holds the result of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the result of And3 (and Between).
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// And runs p then q in sequence, pairing their results.
func And[A, B any](p parse.Parser[A], q parse.Parser[B]) parse.Parser[Pair[A, B]] {
	return parse.AndThen(p, func(a A) parse.Parser[Pair[A, B]] {
		return parse.Map(q, func(b B) Pair[A, B] { return Pair[A, B]{a, b} })
	})
}

// And2 is an alias for And, named to match the "and, and2, and3" trio.
func And2[A, B any](p parse.Parser[A], q parse.Parser[B]) parse.Parser[Pair[A, B]] {
	return And(p, q)
}

// And3 runs p, q, r in sequence, producing a Triple.
func And3[A, B, C any](p parse.Parser[A], q parse.Parser[B], r parse.Parser[C]) parse.Parser[Triple[A, B, C]] {
	return parse.AndThen(And(p, q), func(ab Pair[A, B]) parse.Parser[Triple[A, B, C]] {
		return parse.Map(r, func(c C) Triple[A, B, C] { return Triple[A, B, C]{ab.First, ab.Second, c} })
	})
}

// Between runs open, then p, then close, returning all three results as a
// Triple so callers (the AST layer) can retain the delimiter tokens.
func Between[O, A, C any](p parse.Parser[A], open parse.Parser[O], close parse.Parser[C]) parse.Parser[Triple[O, A, C]] {
	return And3(open, p, close)
}

// BetweenBoth is Between using the same parser for both the open and close
// delimiter.
func BetweenBoth[D, A any](p parse.Parser[A], delim parse.Parser[D]) parse.Parser[Triple[D, A, D]] {
	return Between(p, delim, delim)
}
