package view

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range describes a half-open [Start, End) span. An omitted start is simply
// 0; an omitted end is recorded by Open, meaning "through the end".
type Range struct {
	Start int
	End   int
	Open  bool
}

// Span returns the range [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

// ToEnd returns the range [start, ...).
func ToEnd(start int) Range { return Range{Start: start, Open: true} }

// Resolve returns concrete bounds for a sequence of length n.
// No clamping is done: an out of range End stays out of range.
func (r Range) Resolve(n int) (start, end int) {
	if r.Open {
		return r.Start, n
	}
	return r.Start, r.End
}

func (r Range) String() string {
	var sb strings.Builder
	if r.Start != 0 {
		sb.WriteString(strconv.Itoa(r.Start))
	}
	sb.WriteString("..")
	if !r.Open {
		sb.WriteString(strconv.Itoa(r.End))
	}
	return sb.String()
}

// ParseRange parses range expressions like "1..3", "..3", "4..", and "..".
func ParseRange(s string) (r Range, err error) {
	i := strings.Index(s, "..")
	if i < 0 {
		return r, errors.Errorf("invalid range %q: missing ..", s)
	}
	lo, hi := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:])
	if lo != "" {
		if r.Start, err = parseIndex(lo); err != nil {
			return r, errors.Wrapf(err, "invalid range %q start", s)
		}
	}
	if hi == "" {
		r.Open = true
	} else if r.End, err = parseIndex(hi); err != nil {
		return r, errors.Wrapf(err, "invalid range %q end", s)
	}
	return r, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("negative index %v", n)
	}
	return n, nil
}
