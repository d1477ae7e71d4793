package view

// Boundary reports whether i is a permissible cut point within elems.
// Both 0 and len(elems) are always permissible and never passed to it.
type Boundary[T any] func(elems []T, i int) bool

// Seq is an owned, ordered sequence of elements, from which any number of
// Views may be extracted without copying.
//
// Every mutation advances the sequence epoch, invalidating all views taken
// before it.
type Seq[T any] struct {
	elems    []T
	epoch    uint64
	boundary Boundary[T]
}

// New creates a sequence holding a copy of the given elements.
func New[T any](elems ...T) *Seq[T] {
	return NewBounded[T](nil, elems...)
}

// NewBounded is like New, but any extraction must also satisfy the given
// boundary rule at both ends.
func NewBounded[T any](boundary Boundary[T], elems ...T) *Seq[T] {
	s := &Seq[T]{boundary: boundary}
	if len(elems) > 0 {
		s.elems = append(make([]T, 0, len(elems)), elems...)
	}
	return s
}

// Len returns the number of elements in the sequence.
func (s *Seq[T]) Len() int { return len(s.elems) }

// At returns the element at index i.
func (s *Seq[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, outOfBounds("at", i, i+1, len(s.elems), reasonFor(i, i+1, len(s.elems)))
	}
	return s.elems[i], nil
}

// Set replaces the element at index i, invalidating outstanding views.
func (s *Seq[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.elems) {
		return outOfBounds("set", i, i+1, len(s.elems), reasonFor(i, i+1, len(s.elems)))
	}
	s.elems[i] = v
	s.epoch++
	return nil
}

// Append grows the sequence, invalidating outstanding views.
func (s *Seq[T]) Append(vs ...T) {
	s.elems = append(s.elems, vs...)
	s.epoch++
}

// Truncate shrinks the sequence to n elements, invalidating outstanding views.
func (s *Seq[T]) Truncate(n int) error {
	if err := s.check("truncate", 0, n); err != nil {
		return err
	}
	s.elems = s.elems[:n]
	s.epoch++
	return nil
}

// Extract returns a view over elements [start, end).
func (s *Seq[T]) Extract(start, end int) (View[T], error) {
	if err := s.check("extract", start, end); err != nil {
		return View[T]{}, err
	}
	return View[T]{seq: s, start: start, end: end, epoch: s.epoch}, nil
}

// MustExtract is like Extract, but panics with the error instead.
func (s *Seq[T]) MustExtract(start, end int) View[T] {
	v, err := s.Extract(start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// Range extracts the view described by r.
func (s *Seq[T]) Range(r Range) (View[T], error) {
	start, end := r.Resolve(len(s.elems))
	return s.Extract(start, end)
}

// To returns a view over [0, end).
func (s *Seq[T]) To(end int) (View[T], error) { return s.Extract(0, end) }

// From returns a view over [start, Len()).
func (s *Seq[T]) From(start int) (View[T], error) { return s.Extract(start, len(s.elems)) }

// Full returns a view over the whole sequence.
func (s *Seq[T]) Full() View[T] {
	return View[T]{seq: s, end: len(s.elems), epoch: s.epoch}
}

func (s *Seq[T]) check(op string, start, end int) error {
	n := len(s.elems)
	if reason := reasonFor(start, end, n); reason != "" {
		return outOfBounds(op, start, end, n, reason)
	}
	if s.boundary != nil {
		for _, i := range [2]int{start, end} {
			if i != 0 && i != n && !s.boundary(s.elems, i) {
				return outOfBounds(op, start, end, n, ReasonBoundary)
			}
		}
	}
	return nil
}

func reasonFor(start, end, n int) string {
	switch {
	case start < 0 || end < 0:
		return ReasonNegative
	case start > end:
		return ReasonInverted
	case end > n:
		return ReasonExceeds
	}
	return ""
}
