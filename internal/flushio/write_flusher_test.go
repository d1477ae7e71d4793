package flushio_test

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goslices/internal/flushio"
)

func Test_NewWriteFlusher(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	_, err := io.WriteString(wf, "direct")
	require.NoError(t, err)
	assert.Equal(t, "direct", buf.String(), "buffers are written through")

	bw := bufio.NewWriter(&buf)
	assert.Same(t, bw, flushio.NewWriteFlusher(bw), "existing flushers are reused")

	_, isBuffered := flushio.NewWriteFlusher(os.Stdout).(*bufio.Writer)
	assert.True(t, isBuffered, "other writers are buffered")

	require.NoError(t, flushio.NewWriteFlusher(io.Discard).Flush())
}

func Test_Tee(t *testing.T) {
	var a bytes.Buffer
	var b strings.Builder
	bb := bufio.NewWriter(&b)

	wf := flushio.Tee(flushio.NewWriteFlusher(&a), nil, bb)
	_, err := io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "", b.String(), "expected buffered tee to wait for flush")

	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello", b.String())

	nested := flushio.Tee(wf, flushio.NewWriteFlusher(&a))
	_, err = io.WriteString(nested, "!")
	require.NoError(t, err)
	require.NoError(t, nested.Flush())
	assert.Equal(t, "hello!!", a.String())
	assert.Equal(t, "hello!", b.String())

	require.NoError(t, flushio.Tee().Flush(), "empty tee is a discard")
}
