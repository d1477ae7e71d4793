package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jcorbin/goslices/internal/scan"
)

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func Test_FirstWords(t *testing.T) {
	var out strings.Builder
	require.NoError(t, FirstWords(context.Background(), &out, scan.Scanner{}, zap.NewNop(),
		namedReader{strings.NewReader("hello world\nsecond world\n"), "a.txt"},
		namedReader{strings.NewReader("hello\n\n héllo"), "b.txt"},
	))
	assert.Equal(t, strings.Join([]string{
		"a.txt:1\thello",
		"a.txt:2\tsecond",
		"b.txt:1\thello",
		"b.txt:2\t",
		"b.txt:3\t",
		"",
	}, "\n"), out.String())
}

func Test_FirstWords_separator(t *testing.T) {
	var out strings.Builder
	require.NoError(t, FirstWords(context.Background(), &out, scan.WithSeparator(','), zap.NewNop(),
		namedReader{strings.NewReader("a b,c\nd"), "csv"},
	))
	assert.Equal(t, "csv:1\ta b\ncsv:2\td\n", out.String())
}

func Test_FirstWords_invalidUTF8(t *testing.T) {
	var out strings.Builder
	require.NoError(t, FirstWords(context.Background(), &out, scan.Scanner{}, zap.NewNop(),
		namedReader{strings.NewReader("ab\xffcd rest\n"), "x"},
	))
	assert.Equal(t, "x:1\tab\xffcd\n", out.String(), "expected raw bytes to be preserved")
}

func Test_FirstWords_cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	err := FirstWords(ctx, &out, scan.Scanner{}, zap.NewNop(), strings.NewReader("x\n"))
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, "", out.String())
}
