package text_test

import (
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jcorbin/goslices/internal/text"
	"github.com/jcorbin/goslices/internal/view"
)

func Test_Buffer(t *testing.T) {
	s := text.New("hello world")
	hello, err := s.Extract(0, 5)
	require.NoError(t, err)
	world, err := s.Extract(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "hello", text.MustString(hello))
	assert.Equal(t, "world", text.MustString(world))
}

func Test_Buffer_multibyte(t *testing.T) {
	// "héllo": 'é' occupies bytes 1 and 2
	s := text.New("héllo")
	require.Equal(t, 6, s.Len(), "positions are bytes, not characters")

	v, err := s.Extract(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "hé", text.MustString(v))

	for _, r := range [][2]int{{0, 2}, {2, 6}} {
		_, err := s.Extract(r[0], r[1])
		var oob *view.OutOfBoundsError
		require.True(t, errors.As(err, &oob), "expected [%v..%v] to be rejected, got %v", r[0], r[1], err)
		assert.Equal(t, view.ReasonBoundary, oob.Reason)
	}

	full := s.Full()
	_, err = full.Extract(1, 2)
	assert.True(t, errors.Is(err, view.ErrOutOfBounds), "sub-views are checked too, got %v", err)
}

func Test_Push_invalidates(t *testing.T) {
	s := text.New("hello")
	word, err := s.To(5)
	require.NoError(t, err)

	text.Push(s, " world")
	_, err = text.String(word)
	assert.True(t, errors.Is(err, view.ErrInvalidated), "expected stale slice to fail, got %v", err)
	assert.Panics(t, func() { text.MustString(word) })

	assert.Equal(t, "hello world", text.MustString(s.Full()))
}

func Test_NewGraphemes(t *testing.T) {
	// 'e' followed by a combining acute accent (2 bytes), then 'x'
	const src = "e\u0301x"

	split, err := text.New(src).Extract(0, 1)
	require.NoError(t, err, "char boundaries allow splitting off the accent")
	assert.Equal(t, "e", text.MustString(split))

	s := text.NewGraphemes(src)
	_, err = s.Extract(0, 1)
	var oob *view.OutOfBoundsError
	require.True(t, errors.As(err, &oob), "expected cut inside a cluster to fail, got %v", err)
	assert.Equal(t, view.ReasonBoundary, oob.Reason)
	assert.Contains(t, oob.Error(), "not a cut boundary")

	cluster, err := s.Extract(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "e\u0301", text.MustString(cluster))

	rest, err := s.From(3)
	require.NoError(t, err)
	assert.Equal(t, "x", text.MustString(rest))
}

func Test_Extract_properties(t *testing.T) {
	for _, tc := range []struct {
		name string
		new  func(string) *text.Buffer
	}{
		{"chars", text.New},
		{"graphemes", text.NewGraphemes},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				src := rapid.String().Draw(rt, "text")
				a := rapid.IntRange(0, len(src)).Draw(rt, "a")
				b := rapid.IntRange(0, len(src)).Draw(rt, "b")
				s := tc.new(src)

				v, err := s.Extract(a, b)
				if err != nil {
					if !errors.Is(err, view.ErrOutOfBounds) {
						rt.Fatalf("expected out of bounds error, got %v", err)
					}
					if a <= b && tc.name == "chars" && text.CharBoundary([]byte(src), a) && text.CharBoundary([]byte(src), b) {
						rt.Fatalf("expected [%v..%v] of %q to be allowed, got %v", a, b, src, err)
					}
					return
				}
				got := text.MustString(v)
				if !utf8.ValidString(got) {
					rt.Fatalf("[%v..%v] of %q produced invalid UTF-8 %q", a, b, src, got)
				}
				if got != src[a:b] {
					rt.Fatalf("expected %q, got %q", src[a:b], got)
				}
			})
		})
	}
}
