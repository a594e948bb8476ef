// Package interval implements half-open numeric ranges [Start, End) and the
// overlap arithmetic used when remapping or splitting ranges of ids.
//
// An Interval with Start >= End is empty. Intersection never reports a
// zero-width overlap: [0,5) and [5,10) do not intersect.
package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types an Interval can range over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Interval is the half-open range [Start, End).
type Interval[T Number] struct {
	Start, End T
}

// New returns the interval [start, end).
func New[T Number](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}

// Len returns End-Start, or zero for an empty interval.
func (iv Interval[T]) Len() T {
	if iv.Empty() {
		var zero T
		return zero
	}
	return iv.End - iv.Start
}

// Empty reports whether the interval contains no values.
func (iv Interval[T]) Empty() bool {
	return iv.Start >= iv.End
}

// Contains reports whether Start <= v < End.
func (iv Interval[T]) Contains(v T) bool {
	return iv.Start <= v && v < iv.End
}

// Overlaps reports whether iv and other share at least one value.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	_, ok := Intersection(iv, other)
	return ok
}

// Shift returns the interval moved by delta.
func (iv Interval[T]) Shift(delta T) Interval[T] {
	return Interval[T]{Start: iv.Start + delta, End: iv.End + delta}
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v)", iv.Start, iv.End)
}

// Intersection returns the overlap [max(a.Start,b.Start), min(a.End,b.End))
// and true if it is strictly non-empty. It is commutative.
func Intersection[T Number](a, b Interval[T]) (Interval[T], bool) {
	start := max(a.Start, b.Start)
	end := min(a.End, b.End)
	if start < end {
		return Interval[T]{Start: start, End: end}, true
	}

	return Interval[T]{}, false
}

// Subtract returns the parts of a not covered by b, in ascending order.
// The result has zero, one or two non-empty intervals; together with
// Intersection(a, b) they partition a.
func Subtract[T Number](a, b Interval[T]) []Interval[T] {
	if a.Empty() {
		return nil
	}
	overlap, ok := Intersection(a, b)
	if !ok {
		return []Interval[T]{a}
	}
	out := make([]Interval[T], 0, 2)
	if a.Start < overlap.Start {
		out = append(out, Interval[T]{Start: a.Start, End: overlap.Start})
	}
	if overlap.End < a.End {
		out = append(out, Interval[T]{Start: overlap.End, End: a.End})
	}

	return out
}
