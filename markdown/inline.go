package markdown

import (
	"github.com/tapedown/tapedown/combinator"
	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/mdscope"
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// terminatorParser derives the innermost scope's "inline terminator":
// options(token(s) for s in scope.terminators). An empty set (top
// level) is a parser that never matches, so its ControlFlow never
// signals "stop".
func terminatorParser(env mdscope.Env) parse.Parser[tape.Tape] {
	toks := env.ActiveTerminators()
	if len(toks) == 0 {
		return parse.Fail[tape.Tape]()
	}
	ps := make([]parse.Parser[tape.Tape], len(toks))
	for i, tok := range toks {
		ps[i] = combinator.Token(tok)
	}
	return parse.Options(ps...)
}

func terminatorControlFlow(env mdscope.Env) combinator.ControlFlow {
	return combinator.WrapTry(terminatorParser(env))
}

// InlineRun consumes inline items until the active terminator would
// match: Inline(env) run as a Sequence with AllowEmpty and Terminator
// set to the wrapped terminator lookahead.
func InlineRun(env mdscope.Env) parse.Parser[mdast.Inlines] {
	return func(s parse.State) parse.Outcome[mdast.Inlines] {
		items, s2, ok := combinator.Sequence(Inline(env), combinator.SequenceOptions{
			AllowEmpty: true,
			Terminator: terminatorControlFlow(env),
		})(s).Get()
		if !ok {
			return parse.Break[mdast.Inlines](s)
		}
		return parse.Continue(mdast.Inlines(items), s2)
	}
}

// Inline is options([PlainText, Link, Image, Emphasis, Highlight,
// Strikethrough, Sub, Sup, InlineCode]) with that exact order; the order
// determines tie-breaking. A trailing LineBreak alternative is appended
// so a lone newline mid-paragraph (a paragraph's whole-chunk capture
// spans multiple physical lines joined by a single '\n') doesn't strand
// PlainText at the line boundary; it is folded in here as a tenth,
// lowest-priority alternative rather than disturbing the named nine's
// order. A final fallbackCharParser alternative absorbs one otherwise
// special character (e.g. an unmatched "*" or "[") as literal text once
// every structural alternative above has had its chance and failed, so
// a malformed or unpaired delimiter degrades to plain text one rune at
// a time instead of stalling the whole run.
func Inline(env mdscope.Env) parse.Parser[mdast.Inline] {
	return func(s parse.State) parse.Outcome[mdast.Inline] {
		if v, s2, ok := plainTextParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := linkParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := imageParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := emphasisParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := highlightParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := strikethroughParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := subParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := supParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := inlineCodeParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := lineBreakParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		if v, s2, ok := fallbackCharParser(env)(s).Get(); ok {
			return parse.Continue[mdast.Inline](v, s2)
		}
		return parse.Break[mdast.Inline](s)
	}
}

// inlineSpecialChars are the leading characters of every sibling
// alternative in Inline (link/image, the three emphasis-family
// delimiters, highlight, strikethrough, sub, sup, inline code).
// plainTextParser yields at the first one of these it meets so those
// alternatives are actually reachable, instead of PlainText's "run of
// anything" greedily eating the rest of the line.
var inlineSpecialChars = map[rune]bool{
	'[': true, '!': true, '*': true, '_': true,
	'=': true, '~': true, '^': true, '`': true,
}

// plainTextParser consumes a run of "ordinary" characters: no active
// terminator at the head, not a newline, and not one of
// inlineSpecialChars. It Breaks on a zero-width match so options() above
// correctly falls through to the remaining alternatives instead of
// PlainText dominating every call.
func plainTextParser(env mdscope.Env) parse.Parser[mdast.PlainText] {
	term := terminatorControlFlow(env)
	return func(s parse.State) parse.Outcome[mdast.PlainText] {
		t := s.Tape
		i := 0
		for i < len(t) {
			if t[i].Value == '\n' || inlineSpecialChars[t[i].Value] {
				break
			}
			if term(s.WithTape(t[i:])) {
				break
			}
			i++
		}
		if i == 0 {
			return parse.Break[mdast.PlainText](s)
		}
		text, rest := t.Take(i)
		return parse.Continue(mdast.PlainText{Text: text}, s.WithTape(rest))
	}
}

// fallbackCharParser consumes exactly one character as literal text, the
// last resort once every other Inline alternative has rejected it: the
// ordered alternation needs one to guarantee progress on a special
// character that doesn't end up opening anything, e.g. a lone unmatched
// "*". It still yields to an active terminator, so it never swallows
// the token InlineRun's Sequence is watching for.
func fallbackCharParser(env mdscope.Env) parse.Parser[mdast.PlainText] {
	term := terminatorControlFlow(env)
	return func(s parse.State) parse.Outcome[mdast.PlainText] {
		if term(s) {
			return parse.Break[mdast.PlainText](s)
		}
		c, rest, ok := s.Tape.Uncons()
		if !ok {
			return parse.Break[mdast.PlainText](s)
		}
		return parse.Continue(mdast.PlainText{Text: tape.Tape{c}}, s.WithTape(rest))
	}
}

func lineBreakParser(env mdscope.Env) parse.Parser[mdast.LineBreak] {
	return func(s parse.State) parse.Outcome[mdast.LineBreak] {
		nl, s2, ok := combinator.Newline(s).Get()
		if !ok {
			return parse.Break[mdast.LineBreak](s)
		}
		return parse.Continue(mdast.LineBreak{Newline: nl}, s2)
	}
}

func linkParser(env mdscope.Env) parse.Parser[mdast.Link] {
	return func(s parse.State) parse.Outcome[mdast.Link] {
		open, s2, ok := combinator.Token("[")(s).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}

		labelEnv := env.Push(mdscope.Scope{Kind: mdscope.LinkInSquareBrackets})
		content, s3, ok := InlineRun(labelEnv)(s2).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}

		closeBr, s4, ok := combinator.Token("]")(s3).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}

		openParen, s5, ok := combinator.Token("(")(s4).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}

		destEnv := env.Push(mdscope.Scope{Kind: mdscope.LinkInRoundBrackets})
		destChars, s6, ok := combinator.Sequence(combinator.AnyChar, combinator.SequenceOptions{
			AllowEmpty: true,
			Terminator: terminatorControlFlow(destEnv),
		})(s5).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}
		dest := tape.Tape(destChars)

		var title *mdast.InDoubleQuotes[tape.Tape]
		s7 := s6
		if openQuote, sA, ok := combinator.Token(`"`)(s6).Get(); ok {
			strEnv := env.Push(mdscope.Scope{Kind: mdscope.String})
			titleChars, sB, _ := combinator.Sequence(combinator.AnyChar, combinator.SequenceOptions{
				AllowEmpty: true,
				Terminator: terminatorControlFlow(strEnv),
			})(sA).Get()
			if closeQuote, sC, ok2 := combinator.Token(`"`)(sB).Get(); ok2 {
				title = &mdast.InDoubleQuotes[tape.Tape]{Open: openQuote, Content: tape.Tape(titleChars), Close: closeQuote}
				s7 = sC
			}
		}

		closeParen, s8, ok := combinator.Token(")")(s7).Get()
		if !ok {
			return parse.Break[mdast.Link](s)
		}

		return parse.Continue(mdast.Link{
			Text:        mdast.InSquareBrackets[mdast.Inlines]{Open: open, Content: content, Close: closeBr},
			OpenParen:   openParen,
			Destination: dest,
			Title:       title,
			CloseParen:  closeParen,
		}, s8)
	}
}

func imageParser(env mdscope.Env) parse.Parser[mdast.Image] {
	return func(s parse.State) parse.Outcome[mdast.Image] {
		bang, s2, ok := combinator.Token("!")(s).Get()
		if !ok {
			return parse.Break[mdast.Image](s)
		}
		link, s3, ok := linkParser(env)(s2).Get()
		if !ok {
			return parse.Break[mdast.Image](s)
		}
		return parse.Continue(mdast.Image{Bang: bang, Link: link}, s3)
	}
}

// matchSymmetric runs open := token(delim); content := InlineRun(scoped
// env); close := token(delim), backtracking to s entirely on any failure.
func matchSymmetric(s parse.State, env mdscope.Env, delim string, scope mdscope.Scope) (open tape.Tape, content mdast.Inlines, closeTok tape.Tape, next parse.State, ok bool) {
	o, s2, ok1 := combinator.Token(delim)(s).Get()
	if !ok1 {
		return tape.Tape{}, nil, tape.Tape{}, s, false
	}
	childEnv := env.Push(scope)
	inner, s3, ok2 := InlineRun(childEnv)(s2).Get()
	if !ok2 {
		return tape.Tape{}, nil, tape.Tape{}, s, false
	}
	c, s4, ok3 := combinator.Token(delim)(s3).Get()
	if !ok3 {
		return tape.Tape{}, nil, tape.Tape{}, s, false
	}
	return o, inner, c, s4, true
}

var emphasisDelims = []struct {
	tok  string
	kind mdscope.Kind
	char string
}{
	{"***", mdscope.EmphasisTriple, "*"},
	{"**", mdscope.EmphasisDouble, "*"},
	{"*", mdscope.EmphasisSingle, "*"},
	{"___", mdscope.EmphasisTriple, "_"},
	{"__", mdscope.EmphasisDouble, "_"},
	{"_", mdscope.EmphasisSingle, "_"},
}

// emphasisParser tries, in order, ***, **, *, ___, __, _: open and close
// must be equal-length runs of the same character.
func emphasisParser(env mdscope.Env) parse.Parser[mdast.Emphasis] {
	return func(s parse.State) parse.Outcome[mdast.Emphasis] {
		for _, d := range emphasisDelims {
			scope := mdscope.Scope{Kind: d.kind, Delim: d.char}
			open, content, close, next, ok := matchSymmetric(s, env, d.tok, scope)
			if ok {
				return parse.Continue(mdast.Emphasis{OpenDelim: open, Content: content, CloseDelim: close}, next)
			}
		}
		return parse.Break[mdast.Emphasis](s)
	}
}

func highlightParser(env mdscope.Env) parse.Parser[mdast.Highlight] {
	return func(s parse.State) parse.Outcome[mdast.Highlight] {
		open, content, close, next, ok := matchSymmetric(s, env, "==", mdscope.Scope{Kind: mdscope.Highlight})
		if !ok {
			return parse.Break[mdast.Highlight](s)
		}
		return parse.Continue(mdast.Highlight{OpenDelim: open, Content: content, CloseDelim: close}, next)
	}
}

func strikethroughParser(env mdscope.Env) parse.Parser[mdast.Strikethrough] {
	return func(s parse.State) parse.Outcome[mdast.Strikethrough] {
		open, content, close, next, ok := matchSymmetric(s, env, "~~", mdscope.Scope{Kind: mdscope.Strikethrough})
		if !ok {
			return parse.Break[mdast.Strikethrough](s)
		}
		return parse.Continue(mdast.Strikethrough{OpenDelim: open, Content: content, CloseDelim: close}, next)
	}
}

func subParser(env mdscope.Env) parse.Parser[mdast.Sub] {
	return func(s parse.State) parse.Outcome[mdast.Sub] {
		open, content, close, next, ok := matchSymmetric(s, env, "~", mdscope.Scope{Kind: mdscope.Sub})
		if !ok {
			return parse.Break[mdast.Sub](s)
		}
		return parse.Continue(mdast.Sub{OpenDelim: open, Content: content, CloseDelim: close}, next)
	}
}

func supParser(env mdscope.Env) parse.Parser[mdast.Sup] {
	return func(s parse.State) parse.Outcome[mdast.Sup] {
		open, content, close, next, ok := matchSymmetric(s, env, "^", mdscope.Scope{Kind: mdscope.Sup})
		if !ok {
			return parse.Break[mdast.Sup](s)
		}
		return parse.Continue(mdast.Sup{OpenDelim: open, Content: content, CloseDelim: close}, next)
	}
}

// inlineCodeParser consumes a run of one or more backticks, then content
// up to a closing run of the exact same length, taken verbatim with no
// inline recursion.
func inlineCodeParser(env mdscope.Env) parse.Parser[mdast.InlineCode] {
	return func(s parse.State) parse.Outcome[mdast.InlineCode] {
		open, s2, ok := combinator.Delimiter('`', 1)(s).Get()
		if !ok {
			return parse.Break[mdast.InlineCode](s)
		}
		n := len(open)
		t := s2.Tape
		i := 0
		for i < len(t) {
			if t[i].Value != '`' {
				i++
				continue
			}
			j := i
			for j < len(t) && t[j].Value == '`' {
				j++
			}
			if j-i == n {
				content, rest := t.Take(i)
				closeTicks, rest2 := rest.Take(n)
				return parse.Continue(mdast.InlineCode{OpenTicks: open, Content: content, CloseTicks: closeTicks}, s2.WithTape(rest2))
			}
			i = j
		}
		return parse.Break[mdast.InlineCode](s)
	}
}
