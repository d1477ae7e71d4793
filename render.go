package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/goslices/internal/text"
	"github.com/jcorbin/goslices/internal/view"
)

// renderer writes demonstration output, retaining the first write error so
// that demonstrations need not check every line.
type renderer struct {
	out io.Writer
	err error
}

func (r *renderer) println(args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintln(r.out, args...)
	}
}

func (r *renderer) printf(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.out, format, args...)
	}
}

// debugList formats a view like [a, b, c].
// Panics if the view has been invalidated.
func debugList[T any](v view.View[T], elem func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	if err := v.Each(func(i int, e T) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem(e))
		return true
	}); err != nil {
		panic(err)
	}
	sb.WriteByte(']')
	return sb.String()
}

func debugRunes(v view.View[rune]) string { return debugList(v, strconv.QuoteRune) }

func debugInts(v view.View[int32]) string {
	return debugList(v, func(n int32) string { return strconv.FormatInt(int64(n), 10) })
}

func debugText(v text.Slice) string { return strconv.Quote(text.MustString(v)) }

func displayText(v text.Slice) string { return text.MustString(v) }
