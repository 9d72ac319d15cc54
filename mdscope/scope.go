// Package mdscope implements the scope environment: an immutable ordered
// stack of Scope tags, each announcing which literal token sequences are
// forbidden "continuations" while it is active. Only the innermost
// scope's terminators are active (see DESIGN.md's Open Question
// decision): inside an emphasis inside a link label only the emphasis
// delimiter terminates; the link label's ']' is not a terminator there.
package mdscope

import "fmt"

// Kind identifies which syntactic construct a Scope describes.
type Kind int

const (
	String Kind = iota
	LinkInSquareBrackets
	LinkInRoundBrackets
	EmphasisSingle
	EmphasisDouble
	EmphasisTriple
	Highlight
	Strikethrough
	Sub
	Sup
	InlineCode
	LatexSingle
	LatexDouble
	Blockquote
)

// Scope is one entry in the inline context stack: a Kind plus, for the
// marker-parameterized kinds (emphasis, inline code, latex), the
// delimiter rune or string that was opened.
type Scope struct {
	Kind  Kind
	Delim string // set for EmphasisSingle/Double/Triple, InlineCode, LatexSingle/Double
}

// Terminators returns the literal token sequences forbidden while this
// scope is the innermost one.
func (s Scope) Terminators() []string {
	switch s.Kind {
	case String:
		return []string{`"`}
	case LinkInSquareBrackets:
		return []string{"]"}
	case LinkInRoundBrackets:
		return []string{")"}
	case EmphasisSingle:
		return []string{s.Delim}
	case EmphasisDouble:
		return []string{s.Delim + s.Delim}
	case EmphasisTriple:
		return []string{s.Delim + s.Delim + s.Delim}
	case Highlight:
		return []string{"=="}
	case Strikethrough:
		return []string{"~~"}
	case Sub:
		return []string{"~"}
	case Sup:
		return []string{"^"}
	case InlineCode:
		return []string{s.Delim}
	case LatexSingle:
		return []string{s.Delim}
	case LatexDouble:
		return []string{s.Delim + s.Delim}
	case Blockquote:
		return nil
	default:
		return nil
	}
}

// String renders a terse scope label for debug output and DebugScopes
// entries, in the teacher's terse-default style (scandown/fmt.go).
func (s Scope) String() string {
	switch s.Kind {
	case String:
		return "string"
	case LinkInSquareBrackets:
		return "link(InSquareBrackets)"
	case LinkInRoundBrackets:
		return "link(InRoundBrackets)"
	case EmphasisSingle:
		return fmt.Sprintf("emphasis(single %s)", s.Delim)
	case EmphasisDouble:
		return fmt.Sprintf("emphasis(double %s)", s.Delim)
	case EmphasisTriple:
		return fmt.Sprintf("emphasis(triple %s)", s.Delim)
	case Highlight:
		return "highlight"
	case Strikethrough:
		return "strikethrough"
	case Sub:
		return "sub"
	case Sup:
		return "sup"
	case InlineCode:
		return fmt.Sprintf("inline_code(%s)", s.Delim)
	case LatexSingle:
		return fmt.Sprintf("latex(single %s)", s.Delim)
	case LatexDouble:
		return fmt.Sprintf("latex(double %s)", s.Delim)
	case Blockquote:
		return "blockquote"
	default:
		return "scope(?)"
	}
}

// Env is the immutable scope stack threaded through inline parsing. The
// zero Env is the empty stack (top level, no active terminators).
type Env struct {
	stack []Scope
}

// Push returns a new Env with scope appended as the new innermost entry.
// Env never mutates its receiver's backing stack.
func (e Env) Push(scope Scope) Env {
	stack := make([]Scope, len(e.stack)+1)
	copy(stack, e.stack)
	stack[len(stack)-1] = scope
	return Env{stack: stack}
}

// Innermost returns the current scope and true, or the zero Scope and
// false if the stack is empty (top-level document text).
func (e Env) Innermost() (Scope, bool) {
	if len(e.stack) == 0 {
		return Scope{}, false
	}
	return e.stack[len(e.stack)-1], true
}

// ActiveTerminators returns the innermost scope's forbidden tokens, the
// only terminator set that binds (outer-scope terminators are not
// propagated).
func (e Env) ActiveTerminators() []string {
	s, ok := e.Innermost()
	if !ok {
		return nil
	}
	return s.Terminators()
}

// Depth returns how many scopes are on the stack, used only for
// diagnostic labeling (DebugScopes), never for control flow.
func (e Env) Depth() int { return len(e.stack) }

// Trail renders every scope from outermost to innermost, for feeding into
// parse.State.PushScope when entering a new construct.
func (e Env) Trail() []string {
	out := make([]string, len(e.stack))
	for i, s := range e.stack {
		out[i] = s.String()
	}
	return out
}
