// Package tpdutil holds small output helpers for cmd/tapedown, adapted
// from the teacher's internal/socutil/writer.go: this driver prints a
// tree once and exits rather than running an incremental scan loop, so
// only ErrWriter and PrefixWriter made the trip. WriteBuffer's flush
// policy exists to pace a long-running bufio.Scanner loop, which
// cmd/tapedown never runs.
package tpdutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, tracking its last error, and preventing
// further writes after a non-nil one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix before every line
// written through it. Every Write is passed straight through to w,
// partial lines included; Close only writes out what a failed Write left
// buffered.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	return &prefixer{to: w, prefix: prefix, atBOL: true}
}

type prefixer struct {
	to     io.Writer
	prefix string
	buf    bytes.Buffer
	atBOL  bool
}

func (p *prefixer) Write(b []byte) (n int, err error) {
	first := len(b)
	for len(b) > 0 {
		if p.atBOL {
			p.buf.WriteString(p.prefix)
			p.atBOL = false
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
			p.atBOL = true
		} else {
			b = nil
		}
		p.buf.Write(line)
	}
	if _, err = p.to.Write(p.buf.Bytes()); err != nil {
		return 0, err
	}
	p.buf.Reset()
	return first, nil
}

func (p *prefixer) Close() error {
	if p.buf.Len() == 0 {
		return nil
	}
	_, err := p.to.Write(p.buf.Bytes())
	p.buf.Reset()
	return err
}
