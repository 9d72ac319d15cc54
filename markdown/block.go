package markdown

import (
	"github.com/tapedown/tapedown/combinator"
	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// fencedCodeBlockParser matches a triple-backtick/tilde fence, an
// optional info string on the opening line, verbatim content, and a
// closing fence of the same rune with width >= the opening width.
func fencedCodeBlockParser(s parse.State) parse.Outcome[mdast.FencedCodeBlock] {
	fm, s2, ok := combinator.Fence(s).Get()
	if !ok {
		return parse.Break[mdast.FencedCodeBlock](s)
	}

	info, s3, okInfo := combinator.RestOfLine(s2).Get()
	next := s2
	if okInfo {
		next = s3
	}
	// The newline ending the opening fence line is folded into InfoString
	// (rather than discarded) so Tokens() still reconstructs exactly.
	openNL, afterNL, ok2 := combinator.Newline(next).Get()
	if !ok2 {
		return parse.Break[mdast.FencedCodeBlock](s)
	}
	info = info.Concat(openNL)
	next = afterNL

	t := next.Tape
	lineStart := 0
	for lineStart <= len(t) {
		i := lineStart
		for i < len(t) && isInlineSpace(t[i].Value) {
			i++
		}
		runLen := 0
		for i+runLen < len(t) && t[i+runLen].Value == fm.Rune {
			runLen++
		}
		lineEnd := i + runLen
		blankRest := true
		for lineEnd < len(t) && t[lineEnd].Value != '\n' {
			if !isInlineSpace(t[lineEnd].Value) {
				blankRest = false
			}
			lineEnd++
		}

		if runLen >= fm.Width && blankRest {
			content, rest := t.Take(lineStart)
			closeFence, rest2 := rest.Take(lineEnd - lineStart)
			if len(rest2) > 0 && rest2[0].Value == '\n' {
				nl, r := rest2.Take(1)
				closeFence = closeFence.Concat(nl)
				rest2 = r
			}
			return parse.Continue(mdast.FencedCodeBlock{
				OpenFence:  fm.Token,
				InfoString: info,
				Content:    content,
				CloseFence: closeFence,
			}, next.WithTape(rest2))
		}

		nextNL := -1
		for k := lineStart; k < len(t); k++ {
			if t[k].Value == '\n' {
				nextNL = k
				break
			}
		}
		if nextNL == -1 {
			break
		}
		lineStart = nextNL + 1
	}
	return parse.Break[mdast.FencedCodeBlock](s)
}

// headingParser matches 1-6 '#' then inline content then an optional
// trailing {id}.
func headingParser(s parse.State) parse.Outcome[mdast.Heading] {
	hashes, s2, ok := combinator.Delimiter('#', 1)(s).Get()
	if !ok || len(hashes) > 6 {
		return parse.Break[mdast.Heading](s)
	}

	// The separating whitespace between the hashes and the heading text is
	// not discarded: it is captured as part of the line below and flows
	// into Content as leading PlainText, preserving losslessness.
	line, s4, okLine := combinator.RestOfLine(s2).Get()
	if !okLine {
		line = tape.Tape{}
		s4 = s2
	}
	// The line's trailing newline is left unconsumed: the Block dispatcher
	// picks it up as its own Newline block on the next iteration, the same
	// way a blank line between two paragraphs does.
	contentLine, id := splitHeadingID(line)
	content := parseInlineLine(contentLine)

	return parse.Continue(mdast.Heading{Hashes: hashes, Content: content, ID: id}, s4)
}

// splitHeadingID recognizes a trailing "{...}" on a heading's line as an
// explicit HeadingID, returning the content with it removed.
func splitHeadingID(line tape.Tape) (tape.Tape, *mdast.HeadingID) {
	trimEnd := len(line)
	for trimEnd > 0 && isInlineSpace(line[trimEnd-1].Value) {
		trimEnd--
	}
	if trimEnd == 0 || line[trimEnd-1].Value != '}' {
		return line, nil
	}
	openIdx := -1
	for i := trimEnd - 2; i >= 0; i-- {
		if line[i].Value == '{' {
			openIdx = i
			break
		}
		if line[i].Value == '}' {
			break
		}
	}
	if openIdx == -1 {
		return line, nil
	}
	// Kept verbatim (not trimmed): any whitespace between the heading text
	// and "{id}" belongs to Content so Tokens() still reconstructs exactly.
	content := line[:openIdx]
	return content, &mdast.HeadingID{
		Open:  line[openIdx : openIdx+1],
		Text:  line[openIdx+1 : trimEnd-1],
		Close: line[trimEnd-1:], // includes any trailing whitespace, for losslessness
	}
}

// captureIndentedBody consumes characters that are either whitespace
// (including blank lines, which list items tolerate between sub-blocks)
// or sit at a column deeper than indent, the shared continuation rule
// for Unordered/Ordered/Task list items. Each continuation line's
// leading indentation is then stripped, up to the content's own column
// (indent+1), via stripIndentLeaders so Content holds de-indented text,
// normalizing it for recursive block parsing, with the removed
// indentation kept in markers for losslessness, mirroring
// blockquoteParser's Markers.
func captureIndentedBody(s parse.State, indent int) (stripped tape.Tape, markers []tape.Tape, next parse.State) {
	t := s.Tape
	i := 0
	for i < len(t) {
		if t[i].Value == '\n' || isInlineSpace(t[i].Value) {
			i++
			continue
		}
		if t[i].Position.Column > indent {
			i++
			continue
		}
		break
	}
	body, rest := t.Take(i)
	stripped, markers = stripIndentLeaders(body, indent+1)
	return stripped, markers, s.WithTape(rest)
}

// stripIndentLeaders splits body into physical lines and removes up to
// width columns of leading inline whitespace from each line after the
// first (the first line has already had its indentation consumed by the
// bullet/number/checkbox and its following space), returning the
// de-indented text plus the removed leader for every line in order.
func stripIndentLeaders(body tape.Tape, width int) (stripped tape.Tape, markers []tape.Tape) {
	lineStart := 0
	first := true
	for {
		nl := -1
		for k := lineStart; k < len(body); k++ {
			if body[k].Value == '\n' {
				nl = k
				break
			}
		}
		var line tape.Tape
		if nl == -1 {
			line = body[lineStart:]
		} else {
			line = body[lineStart : nl+1]
		}
		var marker, rest tape.Tape
		if first {
			marker, rest = tape.Tape{}, line
			first = false
		} else {
			marker, rest = stripOneIndentLeader(line, width)
		}
		markers = append(markers, marker)
		stripped = stripped.Concat(rest)
		if nl == -1 {
			break
		}
		lineStart = nl + 1
	}
	return stripped, markers
}

// stripOneIndentLeader removes up to width columns of leading inline
// whitespace from one line (leader and trailing newline both still
// attached to line).
func stripOneIndentLeader(line tape.Tape, width int) (marker, rest tape.Tape) {
	n := 0
	for n < len(line) && n < width && isInlineSpace(line[n].Value) {
		n++
	}
	return line[:n], line[n:]
}

func unorderedListItemParser(s parse.State) parse.Outcome[mdast.UnorderedListItem] {
	bullet, s2, ok := combinator.CharIf(func(r rune) bool { return r == '*' || r == '-' || r == '+' })(s).Get()
	if !ok {
		return parse.Break[mdast.UnorderedListItem](s)
	}
	space, s3, ok := combinator.Char(' ')(s2).Get()
	if !ok {
		return parse.Break[mdast.UnorderedListItem](s)
	}
	indent := space.Position.Column
	body, markers, cur := captureIndentedBody(s3, indent)
	blocks := parseBlocksFromTape(body)
	return parse.Continue(mdast.UnorderedListItem{
		Bullet:  tape.Tape{bullet},
		Space:   tape.Tape{space},
		Markers: markers,
		Content: blocks,
	}, cur)
}

func orderedListItemParser(s parse.State) parse.Outcome[mdast.OrderedListItem] {
	om, s2, ok := combinator.Ordinal(s).Get()
	if !ok {
		return parse.Break[mdast.OrderedListItem](s)
	}
	dot, s3, ok := combinator.Char('.')(s2).Get()
	if !ok {
		return parse.Break[mdast.OrderedListItem](s)
	}
	space, s4, ok := combinator.Char(' ')(s3).Get()
	if !ok {
		return parse.Break[mdast.OrderedListItem](s)
	}
	indent := space.Position.Column
	body, markers, cur := captureIndentedBody(s4, indent)
	blocks := parseBlocksFromTape(body)
	return parse.Continue(mdast.OrderedListItem{
		Number:  om.Token,
		Dot:     tape.Tape{dot},
		Space:   tape.Tape{space},
		Markers: markers,
		Content: blocks,
	}, cur)
}

func taskListItemParser(s parse.State) parse.Outcome[mdast.TaskListItem] {
	open, s2, ok := combinator.Token("[")(s).Get()
	if !ok {
		return parse.Break[mdast.TaskListItem](s)
	}
	status, s3, ok := combinator.CharIf(func(r rune) bool {
		return r == ' ' || r == 'x' || r == 'X' || r == '-'
	})(s2).Get()
	if !ok {
		return parse.Break[mdast.TaskListItem](s)
	}
	closeBr, s4, ok := combinator.Token("]")(s3).Get()
	if !ok {
		return parse.Break[mdast.TaskListItem](s)
	}
	space, s5, ok := combinator.Char(' ')(s4).Get()
	if !ok {
		return parse.Break[mdast.TaskListItem](s)
	}
	indent := space.Position.Column
	body, markers, cur := captureIndentedBody(s5, indent)
	blocks := parseBlocksFromTape(body)
	return parse.Continue(mdast.TaskListItem{
		Header:  mdast.InSquareBrackets[tape.Tape]{Open: open, Content: tape.Tape{status}, Close: closeBr},
		Space:   tape.Tape{space},
		Markers: markers,
		Content: blocks,
	}, cur)
}

// blockquoteParser matches a '>' leader, then consumes while characters
// either sit deeper than the leader's column or are '>' at exactly that
// column, terminating at a blank line. Each physical line's "> "/">"
// leader is then stripped via stripBlockquoteLeaders so Content holds
// the de-prefixed text, with the removed leaders kept in Markers for
// losslessness.
func blockquoteParser(s parse.State) parse.Outcome[mdast.Blockquote] {
	if s.Tape.IsEmpty() || s.Tape[0].Value != '>' {
		return parse.Break[mdast.Blockquote](s)
	}
	leaderCol := s.Tape.StartPosition().Column

	t := s.Tape
	i := 0
	for i < len(t) {
		if t[i].Value == '\n' && i+1 < len(t) && t[i+1].Value == '\n' {
			break
		}
		if t[i].Value == '>' && t[i].Position.Column == leaderCol {
			i++
			continue
		}
		if t[i].Position.Column > leaderCol {
			i++
			continue
		}
		if t[i].Value == '\n' {
			i++
			continue
		}
		break
	}
	body, rest := t.Take(i)
	cur := s.WithTape(rest)

	trimmed, removed := trimTrailingAll(body)
	cur = cur.WithTape(removed.Concat(cur.Tape))

	stripped, markers := stripBlockquoteLeaders(trimmed)
	blocks := parseBlocksFromTape(stripped)
	return parse.Continue(mdast.Blockquote{Markers: markers, Content: blocks}, cur)
}

// stripBlockquoteLeaders splits body into physical lines and removes a
// leading "> " (or a leader-only ">" with no following space) from each,
// returning the de-prefixed text plus the removed leader for every line
// in order, so the caller can thread them back through Blockquote.Tokens.
func stripBlockquoteLeaders(body tape.Tape) (stripped tape.Tape, markers []tape.Tape) {
	lineStart := 0
	for {
		nl := -1
		for k := lineStart; k < len(body); k++ {
			if body[k].Value == '\n' {
				nl = k
				break
			}
		}
		var line tape.Tape
		if nl == -1 {
			line = body[lineStart:]
		} else {
			line = body[lineStart : nl+1]
		}
		marker, rest := stripOneBlockquoteLeader(line)
		markers = append(markers, marker)
		stripped = stripped.Concat(rest)
		if nl == -1 {
			break
		}
		lineStart = nl + 1
	}
	return stripped, markers
}

// stripOneBlockquoteLeader removes a leading '>' plus, if present, the
// single space after it, from one line (leader and trailing newline
// both still attached to line). A line without a leading '>' (a lazily
// continued, more-indented line) yields an empty marker.
func stripOneBlockquoteLeader(line tape.Tape) (marker, rest tape.Tape) {
	if len(line) == 0 || line[0].Value != '>' {
		return tape.Tape{}, line
	}
	n := 1
	if len(line) > 1 && line[1].Value == ' ' {
		n = 2
	}
	return line[:n], line[n:]
}

// horizontalRuleParser matches 3+ repeats of one of '-', '*', '_' with a
// blank rest-of-line.
func horizontalRuleParser(s parse.State) parse.Outcome[mdast.HorizontalRule] {
	run, s2, ok := combinator.Ruler(s).Get()
	if !ok {
		return parse.Break[mdast.HorizontalRule](s)
	}
	t := s2.Tape
	i := 0
	for i < len(t) && t[i].Value != '\n' {
		if !isInlineSpace(t[i].Value) {
			return parse.Break[mdast.HorizontalRule](s)
		}
		i++
	}
	trailing, rest := t.Take(i)
	tokens := run.Concat(trailing)
	cur := s2.WithTape(rest)
	if nl, afterNL, ok2 := combinator.Newline(cur).Get(); ok2 {
		tokens = tokens.Concat(nl)
		cur = afterNL
	}
	return parse.Continue(mdast.HorizontalRule{Tokens_: tokens}, cur)
}

// paragraphParser is the block-grammar fallback: it accumulates
// characters until a blank line (\n\n) or end of input, then re-parses
// the captured chunk as inline content. Because it is tried only after
// every other dispatcher entry has failed, a continuation line that
// wouldn't open any other block is already swallowed here without any
// extra lazy-continuation logic, the behavior carried from the
// teacher's BlockStack.Scan.
func paragraphParser(s parse.State) parse.Outcome[mdast.Paragraph] {
	t := s.Tape
	i := 0
	for i < len(t) {
		if t[i].Value == '\n' && i+1 < len(t) && t[i+1].Value == '\n' {
			break
		}
		i++
	}
	if i == 0 {
		return parse.Break[mdast.Paragraph](s)
	}
	chunk, rest := t.Take(i)
	cur := s.WithTape(rest)
	content := parseInlineLine(chunk)
	return parse.Continue(mdast.Paragraph{Content: content}, cur)
}
