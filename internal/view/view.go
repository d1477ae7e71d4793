package view

// View is a non-owning reference to a contiguous span of a Seq.
//
// Views are values: copying one is cheap and they need no cleanup. A view
// remains usable only until its sequence is next mutated; after that every
// accessor returns ErrInvalidated. The zero View is an empty, valid view.
type View[T any] struct {
	seq        *Seq[T]
	start, end int
	epoch      uint64
}

// Len returns the number of elements covered by the view.
func (v View[T]) Len() int { return v.end - v.start }

// Bounds returns the view's range within its sequence.
func (v View[T]) Bounds() (start, end int) { return v.start, v.end }

// Valid returns true if the view's sequence has not been mutated since the
// view was created.
func (v View[T]) Valid() bool { return v.seq == nil || v.seq.epoch == v.epoch }

// At returns the element at index i relative to the view.
func (v View[T]) At(i int) (T, error) {
	var zero T
	if err := v.validate("at"); err != nil {
		return zero, err
	}
	if i < 0 || i >= v.Len() {
		return zero, outOfBounds("at", i, i+1, v.Len(), reasonFor(i, i+1, v.Len()))
	}
	return v.seq.elems[v.start+i], nil
}

// Extract returns a sub-view over [start, end) relative to this view; the
// result references the same sequence.
func (v View[T]) Extract(start, end int) (View[T], error) {
	if err := v.validate("extract"); err != nil {
		return View[T]{}, err
	}
	if reason := reasonFor(start, end, v.Len()); reason != "" {
		return View[T]{}, outOfBounds("extract", start, end, v.Len(), reason)
	}
	if v.seq == nil {
		return View[T]{}, nil
	}
	return v.seq.Extract(v.start+start, v.start+end)
}

// Range extracts the sub-view described by r.
func (v View[T]) Range(r Range) (View[T], error) {
	start, end := r.Resolve(v.Len())
	return v.Extract(start, end)
}

// Each calls fn with every element in order, stopping early if fn returns
// false.
func (v View[T]) Each(fn func(i int, elem T) bool) error {
	if err := v.validate("each"); err != nil {
		return err
	}
	if v.seq == nil {
		return nil
	}
	for i, elem := range v.seq.elems[v.start:v.end] {
		if !fn(i, elem) {
			break
		}
	}
	return nil
}

// Clone returns a copy of the viewed elements; the copy is unaffected by any
// later mutation of the sequence.
func (v View[T]) Clone() ([]T, error) {
	if err := v.validate("clone"); err != nil {
		return nil, err
	}
	out := make([]T, v.Len())
	if v.seq != nil {
		copy(out, v.seq.elems[v.start:v.end])
	}
	return out, nil
}

func (v View[T]) validate(op string) error {
	if !v.Valid() {
		return invalidated(op, v.epoch, v.seq.epoch)
	}
	return nil
}
