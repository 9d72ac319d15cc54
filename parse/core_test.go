package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/parse"
)

func anyChar(s parse.State) parse.Outcome[rune] {
	c, tail, ok := s.Tape.Uncons()
	if !ok {
		return parse.Break[rune](s)
	}
	return parse.Continue(c.Value, s.WithTape(tail))
}

func TestPureAndThenLaws(t *testing.T) {
	s := parse.NewState("abc")

	f := func(a int) parse.Parser[int] { return parse.Pure(a + 1) }
	out1 := parse.AndThen(parse.Pure(1), f)(s)
	out2 := f(1)(s)
	assert.Equal(t, out1.Value(), out2.Value())

	p := parse.Parser[rune](anyChar)
	out3 := parse.AndThen(p, parse.Pure[rune])(s)
	out4 := p(s)
	assert.Equal(t, out3.Value(), out4.Value())
	assert.Equal(t, out3.State().Tape.String(), out4.State().Tape.String())
}

func TestOrBacktrackingPurity(t *testing.T) {
	s := parse.NewState("xyz")
	breaking := parse.Fail[rune]()

	out := parse.Or(breaking, parse.Parser[rune](anyChar))(s)
	direct := anyChar(s)

	require.True(t, out.Ok())
	assert.Equal(t, direct.Value(), out.Value())
	assert.Equal(t, direct.State().Tape.String(), out.State().Tape.String())
}

func TestOptionsFirstWins(t *testing.T) {
	s := parse.NewState("z")
	p := parse.Options(
		parse.Fail[string](),
		parse.Pure("first"),
		parse.Pure("second"),
	)
	out := p(s)
	require.True(t, out.Ok())
	assert.Equal(t, "first", out.Value())
}

func TestOptionalOnBreakLeavesStateUnchanged(t *testing.T) {
	s := parse.NewState("abc")
	out := parse.Optional(parse.Fail[rune]())(s)
	require.True(t, out.Ok())
	v, present := out.Value().Get()
	assert.False(t, present)
	assert.Equal(t, rune(0), v)
	assert.Equal(t, s.Tape.String(), out.State().Tape.String())
}

func TestEvaluateNeverPanicsOnBreak(t *testing.T) {
	result, final := parse.Evaluate("abc", parse.Fail[int]())
	assert.Nil(t, result)
	assert.Equal(t, "abc", final.Tape.String())
}

func TestEvaluateNilParserRecordsDiagnosticInsteadOfPanicking(t *testing.T) {
	result, final := parse.Evaluate[int]("abc", nil)
	assert.Nil(t, result)
	assert.Contains(t, final.Diagnostics(), parse.ErrNilParser.Error())
}

func TestEitherOrTagsWhicheverSideSucceeded(t *testing.T) {
	digit := func(s parse.State) parse.Outcome[rune] {
		c, tail, ok := s.Tape.Uncons()
		if !ok || c.Value < '0' || c.Value > '9' {
			return parse.Break[rune](s)
		}
		return parse.Continue(c.Value, s.WithTape(tail))
	}
	letter := parse.Parser[rune](anyChar)

	left := parse.EitherOr(digit, letter)(parse.NewState("9x"))
	require.True(t, left.Ok())
	either := left.Value()
	assert.True(t, either.IsLeft)
	assert.Equal(t, '9', either.Left)

	right := parse.EitherOr(digit, letter)(parse.NewState("xy"))
	require.True(t, right.Ok())
	either = right.Value()
	assert.False(t, either.IsLeft)
	assert.Equal(t, 'x', either.Right)

	_, _, ok := parse.EitherOr(digit, digit)(parse.NewState("xy")).Get()
	assert.False(t, ok, "must Break when neither side matches")
}

func TestPutBackPrependsToInput(t *testing.T) {
	held := parse.NewState("ab")
	out := parse.PutBack(held, parse.Parser[rune](anyChar))(parse.NewState("c"))
	require.True(t, out.Ok())
	assert.Equal(t, 'a', out.Value())
	assert.Equal(t, "bc", out.State().Tape.String())
}

func TestWithDebugLabelDoesNotAffectOutcome(t *testing.T) {
	s := parse.NewState("abc")
	labeled := parse.WithDebugLabel("char", parse.Parser[rune](anyChar))(s)
	plain := anyChar(s)
	assert.Equal(t, plain.Ok(), labeled.Ok())
	assert.Equal(t, plain.Value(), labeled.Value())
	assert.Contains(t, labeled.State().Diagnostics(), "char")
}
