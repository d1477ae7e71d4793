// Package scan finds token boundaries in byte sequences.
package scan

import (
	"github.com/pkg/errors"

	"github.com/jcorbin/goslices/internal/view"
)

// DefaultSeparator is the byte that ends a word: an ASCII space.
const DefaultSeparator byte = ' '

// Bytes is a readable, indexable byte range. It is satisfied both by an owned
// *view.Seq[byte] and by a borrowed view.View[byte].
type Bytes interface {
	Len() int
	At(i int) (byte, error)
	Extract(start, end int) (view.View[byte], error)
}

var (
	_ Bytes = (*view.Seq[byte])(nil)
	_ Bytes = view.View[byte]{}
)

// Scanner scans for a separator byte; the zero Scanner uses
// DefaultSeparator.
type Scanner struct {
	Sep byte

	sepSet bool
}

// WithSeparator returns a Scanner for the given separator, which may be any
// byte including NUL.
func WithSeparator(sep byte) Scanner { return Scanner{Sep: sep, sepSet: true} }

func (sc Scanner) sep() byte {
	if sc.Sep == 0 && !sc.sepSet {
		return DefaultSeparator
	}
	return sc.Sep
}

// FirstWordOffset returns the index of the first separator, or b.Len() if
// there is none.
func (sc Scanner) FirstWordOffset(b Bytes) (int, error) {
	if err := validate(b); err != nil {
		return 0, err
	}
	sep := sc.sep()
	n := b.Len()
	for i := 0; i < n; i++ {
		c, err := b.At(i)
		if err != nil {
			return 0, err
		}
		if c == sep {
			return i, nil
		}
	}
	return n, nil
}

// FirstWord returns a view over the first word: everything before the first
// separator, or all of b if there is none.
//
// If b may not be cut at the separator, as when it is joined into a grapheme
// cluster with the preceding character, the word ends at the last permitted
// cut before it instead. Its length is then less than FirstWordOffset.
func (sc Scanner) FirstWord(b Bytes) (view.View[byte], error) {
	if err := validate(b); err != nil {
		return view.View[byte]{}, err
	}
	sep := sc.sep()
	n := b.Len()
	for i := 0; i < n; i++ {
		c, err := b.At(i)
		if err != nil {
			return view.View[byte]{}, err
		}
		if c == sep {
			return extractBefore(b, i)
		}
	}
	return b.Extract(0, n)
}

// validate fails if b is a view whose sequence has since been mutated,
// even when there is nothing to scan.
func validate(b Bytes) error {
	_, err := b.Extract(0, 0)
	return err
}

// extractBefore returns b[0:end], moving end back to the nearest cut
// boundary; 0 is always one.
func extractBefore(b Bytes, end int) (view.View[byte], error) {
	for ; ; end-- {
		v, err := b.Extract(0, end)
		var oob *view.OutOfBoundsError
		if end == 0 || !errors.As(err, &oob) || oob.Reason != view.ReasonBoundary {
			return v, err
		}
	}
}

// FirstWordOffset calls Scanner.FirstWordOffset with DefaultSeparator.
func FirstWordOffset(b Bytes) (int, error) { return Scanner{}.FirstWordOffset(b) }

// FirstWord calls Scanner.FirstWord with DefaultSeparator.
func FirstWord(b Bytes) (view.View[byte], error) { return Scanner{}.FirstWord(b) }
