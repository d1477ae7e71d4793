package view

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidated is matched by every *InvalidatedError.
	ErrInvalidated = errors.New("view invalidated")
)

// Reasons reported by OutOfBoundsError.
const (
	ReasonInverted = "start > end"
	ReasonNegative = "negative index"
	ReasonExceeds  = "end exceeds length"
	ReasonBoundary = "not a cut boundary"
)

// OutOfBoundsError indicates that a range violated 0 <= start <= end <= Len.
// Ranges are never clamped or wrapped.
type OutOfBoundsError struct {
	Op     string
	Start  int
	End    int
	Len    int
	Reason string
}

func (oob *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v [%v..%v] out of bounds for length %v: %v",
		oob.Op, oob.Start, oob.End, oob.Len, oob.Reason)
}

func (oob *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// InvalidatedError indicates use of a view after its sequence was mutated.
type InvalidatedError struct {
	Op        string
	ViewEpoch uint64
	SeqEpoch  uint64
}

func (inv *InvalidatedError) Error() string {
	return fmt.Sprintf("%v on view from epoch %v, sequence now at epoch %v",
		inv.Op, inv.ViewEpoch, inv.SeqEpoch)
}

func (inv *InvalidatedError) Is(target error) bool { return target == ErrInvalidated }

func outOfBounds(op string, start, end, n int, reason string) error {
	return errors.WithStack(&OutOfBoundsError{op, start, end, n, reason})
}

func invalidated(op string, viewEpoch, seqEpoch uint64) error {
	return errors.WithStack(&InvalidatedError{op, viewEpoch, seqEpoch})
}
