package markdown

import "github.com/tapedown/tapedown/tape"

func isInlineSpace(r rune) bool { return r == ' ' || r == '\t' }

func trimSpacesTape(t tape.Tape) tape.Tape {
	start := 0
	for start < len(t) && isInlineSpace(t[start].Value) {
		start++
	}
	end := len(t)
	for end > start && isInlineSpace(t[end-1].Value) {
		end--
	}
	return t[start:end]
}

// trimTrailingAll trims trailing whitespace, including newlines, from t,
// returning what was trimmed so the caller can put it back into the
// outer stream, the same put-back rule combinator.Lines applies,
// applied here to Blockquote's captured body.
func trimTrailingAll(t tape.Tape) (trimmed, removed tape.Tape) {
	end := len(t)
	for end > 0 && (isInlineSpace(t[end-1].Value) || t[end-1].Value == '\n' || t[end-1].Value == '\r') {
		end--
	}
	return t[:end], t[end:]
}
