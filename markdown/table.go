package markdown

import (
	"github.com/tapedown/tapedown/combinator"
	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/parse"
	"github.com/tapedown/tapedown/tape"
)

// tableParser matches a header row, a separator row of ":---:"-style
// cells, and zero or more body rows. Any failure in the header or
// separator lets the whole construct fall through to paragraphParser.
func tableParser(s parse.State) parse.Outcome[mdast.Table] {
	header, s2, ok := tableRowParser(s).Get()
	if !ok {
		return parse.Break[mdast.Table](s)
	}
	sep, s3, ok := separatorRowParser(s2).Get()
	if !ok {
		return parse.Break[mdast.Table](s)
	}

	var rows []mdast.TableRow
	cur := s3
	for {
		row, next, ok := tableRowParser(cur).Get()
		if !ok {
			break
		}
		if next.Tape.Equal(cur.Tape) {
			break
		}
		rows = append(rows, row)
		cur = next
	}

	return parse.Continue(mdast.Table{Header: header, Separator: sep, Rows: rows}, cur)
}

// containsPipe reports whether t has at least one '|', the cheap check
// that lets tableRowParser Break fast on an ordinary paragraph line.
func containsPipe(t tape.Tape) bool {
	for _, c := range t {
		if c.Value == '|' {
			return true
		}
	}
	return false
}

// pipeSplit is one cell's raw content plus the pipe token that follows
// it (empty if the cell runs to end of line).
type pipeSplit struct {
	Content tape.Tape
	Pipe    tape.Tape
}

// splitOnPipe divides a line (with any leading '|' already stripped) on
// '|' boundaries, pairing each cell's content with its trailing pipe. A
// '|' at the very end of the line terminates the last cell rather than
// introducing one more empty cell after it.
func splitOnPipe(line tape.Tape) []pipeSplit {
	var trailingPipe tape.Tape
	if len(line) > 0 && line[len(line)-1].Value == '|' {
		trailingPipe = line[len(line)-1:]
		line = line[:len(line)-1]
	}

	var cells []pipeSplit
	start := 0
	for i := 0; i <= len(line); i++ {
		if i == len(line) || line[i].Value == '|' {
			content := line[start:i]
			var pipe tape.Tape
			if i < len(line) {
				pipe = line[i : i+1]
			}
			cells = append(cells, pipeSplit{Content: content, Pipe: pipe})
			start = i + 1
		}
	}
	if len(trailingPipe) > 0 && len(cells) > 0 {
		cells[len(cells)-1].Pipe = trailingPipe
	}
	return cells
}

func tableRowParser(s parse.State) parse.Outcome[mdast.TableRow] {
	line, s2, ok := combinator.RestOfLine(s).Get()
	if !ok || !containsPipe(line) {
		return parse.Break[mdast.TableRow](s)
	}

	var leadingPipe tape.Tape
	if len(line) > 0 && line[0].Value == '|' {
		leadingPipe = line[0:1]
		line = line[1:]
	}

	splits := splitOnPipe(line)
	cells := make([]mdast.TableCell, len(splits))
	for i, sp := range splits {
		cells[i] = mdast.TableCell{Content: mdast.Raw{Text: sp.Content}, Pipe: sp.Pipe}
	}

	cur := s2
	var nl tape.Tape
	if t, afterNL, ok2 := combinator.Newline(s2).Get(); ok2 {
		nl = t
		cur = afterNL
	}

	return parse.Continue(mdast.TableRow{LeadingPipe: leadingPipe, Cells: cells, Newline: nl}, cur)
}

func separatorRowParser(s parse.State) parse.Outcome[mdast.SeparatorRow] {
	line, s2, ok := combinator.RestOfLine(s).Get()
	if !ok || !containsPipe(line) {
		return parse.Break[mdast.SeparatorRow](s)
	}

	var leadingPipe tape.Tape
	if len(line) > 0 && line[0].Value == '|' {
		leadingPipe = line[0:1]
		line = line[1:]
	}

	splits := splitOnPipe(line)
	cells := make([]mdast.SeparatorCell, len(splits))
	for i, sp := range splits {
		align, ok := parseAlignCell(sp.Content)
		if !ok {
			return parse.Break[mdast.SeparatorRow](s)
		}
		cells[i] = mdast.SeparatorCell{Content: sp.Content, Align: align, Pipe: sp.Pipe}
	}

	cur := s2
	var nl tape.Tape
	if t, afterNL, ok2 := combinator.Newline(s2).Get(); ok2 {
		nl = t
		cur = afterNL
	}

	return parse.Continue(mdast.SeparatorRow{LeadingPipe: leadingPipe, Cells: cells, Newline: nl}, cur)
}

// parseAlignCell recognizes a single separator cell of the form
// ":---", "---:", ":---:", or "---". The whole trimmed cell must be
// consumed exactly or the cell is rejected, causing the separator row
// (and hence the table) to fail.
func parseAlignCell(raw tape.Tape) (mdast.ColumnAlign, bool) {
	t := trimSpacesTape(raw)
	if len(t) == 0 {
		return mdast.AlignNone, false
	}
	left := t[0].Value == ':'
	right := t[len(t)-1].Value == ':'
	start := 0
	if left {
		start = 1
	}
	end := len(t)
	if right {
		end--
	}
	if start >= end {
		return mdast.AlignNone, false
	}
	for i := start; i < end; i++ {
		if t[i].Value != '-' {
			return mdast.AlignNone, false
		}
	}
	switch {
	case left && right:
		return mdast.AlignCenter, true
	case left:
		return mdast.AlignLeft, true
	case right:
		return mdast.AlignRight, true
	default:
		return mdast.AlignNone, true
	}
}
