package runeio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goslices/internal/runeio"
)

func Test_ParseByte(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want byte
	}{
		{"<SP>", ' '},
		{"<sp>", ' '},
		{"<HT>", '\t'},
		{"^I", '\t'},
		{"^@", 0},
		{"<DEL>", 0x7f},
		{"' '", ' '},
		{`'\t'`, '\t'},
		{`'\x2c'`, ','},
		{",", ','},
	} {
		t.Run(tc.in, func(t *testing.T) {
			b, err := runeio.ParseByte(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)
		})
	}

	for _, bad := range []string{"", "ab", "'ab'", "é", "'é'", "<NOPE>"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := runeio.ParseByte(bad)
			assert.Error(t, err)
		})
	}
}

func Test_CaretForm(t *testing.T) {
	assert.Equal(t, "^[", runeio.CaretForm(0x1b))
	assert.Equal(t, "^?", runeio.CaretForm(0x7f))
	assert.Equal(t, "", runeio.CaretForm('a'))
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func Test_NewReader(t *testing.T) {
	sr := strings.NewReader("x")
	assert.Same(t, sr, runeio.NewReader(sr), "byte and rune readers are used as is")

	r := runeio.NewReader(namedReader{strings.NewReader("yz"), "input.txt"})
	named, ok := r.(interface{ Name() string })
	require.True(t, ok, "expected name to be preserved")
	assert.Equal(t, "input.txt", named.Name())

	c, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('y'), c)

	cr, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'z', cr)
}
