package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w if it is already a WriteFlusher, w with a no-op
// Flush if it is an in-memory buffer or io.Discard, or a bufio.Writer around
// w otherwise.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == io.Discard {
		return nopFlusher{w}
	}

	// types like bytes.Buffer and strings.Builder
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

// Tee combines WriteFlushers into one that writes to, and flushes, all of
// them in order. Nil arguments are skipped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		if many, ok := wf.(tee); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nopFlusher{io.Discard}
	case 1:
		return all[0]
	default:
		return all
	}
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

type tee []WriteFlusher

func (t tee) Write(p []byte) (n int, err error) {
	for _, wf := range t {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
