package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading single bytes and runes.
type Reader interface {
	io.Reader
	io.ByteReader
	io.RuneReader
}

// NewReader returns r if it already implements Reader, otherwise it wraps r
// with a bufio.Reader. If r implements Name() string, so will the result.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, impl.Name()}
	}
	return br
}

type namedReader struct {
	*bufio.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
