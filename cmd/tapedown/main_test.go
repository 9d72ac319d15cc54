package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/markdown"
)

func TestWriteTreeTerseListsOneLinePerBlock(t *testing.T) {
	doc, final := markdown.Parse("# Title\n\npara one\n")
	require.True(t, final.Tape.IsEmpty())

	var buf bytes.Buffer
	writeTree(&buf, doc.Blocks, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(doc.Blocks))
	assert.True(t, strings.HasPrefix(lines[0], "1. "))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], fmt.Sprintf("%d. ", len(doc.Blocks))))
}

func TestWriteTreeVerboseDiffersFromTerse(t *testing.T) {
	doc, final := markdown.Parse("# Title\n")
	require.True(t, final.Tape.IsEmpty())

	var terse, verbose bytes.Buffer
	writeTree(&terse, doc.Blocks, false)
	writeTree(&verbose, doc.Blocks, true)

	assert.NotEqual(t, terse.String(), verbose.String())
}

func TestBufWriterAccumulatesBytes(t *testing.T) {
	bw := new(bufWriter)
	n, err := bw.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = bw.Write([]byte("cd"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcd", string(bw.Bytes()))
}
