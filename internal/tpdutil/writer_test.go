package tpdutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapedown/tapedown/internal/tpdutil"
)

func TestErrWriterPassesThroughUntilError(t *testing.T) {
	var buf bytes.Buffer
	ew := &tpdutil.ErrWriter{Writer: &buf}

	n, err := ew.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
	assert.NoError(t, ew.Err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestErrWriterLatchesFirstError(t *testing.T) {
	ew := &tpdutil.ErrWriter{Writer: failingWriter{}}

	_, err := ew.Write([]byte("a"))
	require.Error(t, err)

	// A second write must not touch the underlying writer again; Err stays boom.
	n, err2 := ew.Write([]byte("b"))
	assert.Equal(t, 0, n)
	assert.Equal(t, err, err2)
}

func TestPrefixWriterPrependsOnEachLine(t *testing.T) {
	var buf bytes.Buffer
	pw := tpdutil.PrefixWriter("> ", &buf)

	_, err := pw.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	assert.Equal(t, "> one\n> two\n", buf.String())
}

func TestPrefixWriterWritesPartialFinalLineImmediately(t *testing.T) {
	var buf bytes.Buffer
	pw := tpdutil.PrefixWriter("log: ", &buf)

	_, err := pw.Write([]byte("partial"))
	require.NoError(t, err)
	assert.Equal(t, "log: partial", buf.String())

	require.NoError(t, pw.Close())
	assert.Equal(t, "log: partial", buf.String())
}

func TestPrefixWriterAcrossMultipleWrites(t *testing.T) {
	var buf bytes.Buffer
	pw := tpdutil.PrefixWriter("- ", &buf)

	_, err := pw.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = pw.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	assert.Equal(t, "- first\n- second\n", buf.String())
}
