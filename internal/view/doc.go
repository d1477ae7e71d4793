/*
Package view implements non-owning sub-views over owned sequences.

A Seq owns its elements; Extract hands out View values that reference a
half-open [start, end) span of it without copying. Ranges are checked, never
clamped: any violation of 0 <= start <= end <= Len is an OutOfBoundsError.

Go cannot prove statically that a sequence outlives its views, or that it is
not mutated while they are live. Instead each Seq counts mutations, and a
View remembers the count it was created under. Once the sequence changes, the
view fails fast with ErrInvalidated. Views that must survive a mutation
should be Clone-d first.
*/
package view
