// Package text provides UTF-8 byte sequences built on package view.
//
// All positions are byte offsets, not character counts. A cut that would
// split a multi-byte encoding is rejected as out of bounds rather than
// silently producing invalid UTF-8.
package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/jcorbin/goslices/internal/view"
)

// Buffer is an owned, growable text sequence.
type Buffer = view.Seq[byte]

// Slice is a borrowed view into a Buffer.
type Slice = view.View[byte]

// New returns a Buffer holding a copy of s.
func New(s string) *Buffer {
	return view.NewBounded[byte](CharBoundary, []byte(s)...)
}

// CharBoundary returns true if i does not fall inside a multi-byte encoding.
func CharBoundary(b []byte, i int) bool {
	return i == len(b) || utf8.RuneStart(b[i])
}

// NewGraphemes is like New, but the Buffer may only be cut between grapheme
// clusters, so that e.g. a letter is never separated from its combining
// accent.
func NewGraphemes(s string) *Buffer {
	return view.NewBounded[byte](GraphemeBoundary, []byte(s)...)
}

// GraphemeBoundary returns true if i falls between grapheme clusters.
func GraphemeBoundary(b []byte, i int) bool {
	g := uniseg.NewGraphemes(string(b))
	for g.Next() {
		from, _ := g.Positions()
		if from == i {
			return true
		} else if from > i {
			return false
		}
	}
	return i == len(b)
}

// Push appends s to the buffer, invalidating outstanding slices.
func Push(buf *Buffer, s string) {
	buf.Append([]byte(s)...)
}

// String copies out the text under a slice.
func String(s Slice) (string, error) {
	b, err := s.Clone()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MustString is like String, but panics on error.
func MustString(s Slice) string {
	str, err := String(s)
	if err != nil {
		panic(err)
	}
	return str
}
