package query

import (
	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

// Terminal operations drain an enumerator, partially or fully, and return a
// scalar or slice. Structural precondition violations (empty sequence, more
// than one element, no predicate match) fail with a StateError wrapping
// errors.ErrInvalidState; bad indexes fail with a RangeError wrapping
// errors.ErrOutOfRange. The ...OrDefault variants substitute the fallback
// only for the specific structural failure they tolerate.

// ToSlice materializes the sequence into a slice using a fresh enumerator.
func (s Sequence[T]) ToSlice() []T {
	return drain(s.Enumerator())
}

// Count returns the number of elements.
func (s Sequence[T]) Count() int {
	n := 0
	e := s.Enumerator()
	for e.MoveNext() {
		n++
	}
	return n
}

// CountWhere returns the number of elements satisfying the predicate.
func (s Sequence[T]) CountWhere(predicate func(T) bool) int {
	return s.Where(predicate).Count()
}

// Any reports whether the sequence has at least one element.
func (s Sequence[T]) Any() bool {
	return s.Enumerator().MoveNext()
}

// AnyWhere reports whether any element satisfies the predicate.
func (s Sequence[T]) AnyWhere(predicate func(T) bool) bool {
	return s.Where(predicate).Any()
}

// All reports whether every element satisfies the predicate. An empty
// sequence vacuously satisfies All.
func (s Sequence[T]) All(predicate func(T) bool) bool {
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// First returns the first element. Fails on an empty sequence.
func (s Sequence[T]) First() (T, error) {
	v, ok := advance(s.Enumerator())
	if !ok {
		return v, gserrors.NewStateError("query", "First", "sequence contains no elements")
	}
	return v, nil
}

// FirstWhere returns the first element satisfying the predicate. Fails when
// no element matches.
func (s Sequence[T]) FirstWhere(predicate func(T) bool) (T, error) {
	v, ok := advance(s.Where(predicate).Enumerator())
	if !ok {
		return v, gserrors.NewStateError("query", "FirstWhere", "no element satisfies the predicate")
	}
	return v, nil
}

// FirstOrDefault returns the first element, or fallback when the sequence
// is empty.
func (s Sequence[T]) FirstOrDefault(fallback T) T {
	if v, ok := advance(s.Enumerator()); ok {
		return v
	}
	return fallback
}

// FirstWhereOrDefault returns the first element satisfying the predicate,
// or fallback when none matches.
func (s Sequence[T]) FirstWhereOrDefault(predicate func(T) bool, fallback T) T {
	return s.Where(predicate).FirstOrDefault(fallback)
}

// Last returns the last element. Fails on an empty sequence.
func (s Sequence[T]) Last() (T, error) {
	var last T
	found := false
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		last = v
		found = true
	}
	if !found {
		return last, gserrors.NewStateError("query", "Last", "sequence contains no elements")
	}
	return last, nil
}

// LastWhere returns the last element satisfying the predicate. Fails when
// no element matches.
func (s Sequence[T]) LastWhere(predicate func(T) bool) (T, error) {
	v, err := s.Where(predicate).Last()
	if err != nil {
		return v, gserrors.NewStateError("query", "LastWhere", "no element satisfies the predicate")
	}
	return v, nil
}

// LastOrDefault returns the last element, or fallback when the sequence is
// empty.
func (s Sequence[T]) LastOrDefault(fallback T) T {
	v, err := s.Last()
	if err != nil {
		return fallback
	}
	return v
}

// Single returns the only element. Fails on an empty sequence and on a
// sequence with more than one element.
func (s Sequence[T]) Single() (T, error) {
	e := s.Enumerator()
	v, ok := advance(e)
	if !ok {
		return v, gserrors.NewStateError("query", "Single", "sequence contains no elements")
	}
	if e.MoveNext() {
		var zero T
		return zero, gserrors.NewStateError("query", "Single", "sequence contains more than one element")
	}
	return v, nil
}

// SingleWhere returns the only element satisfying the predicate. Fails when
// no element matches and when the match is ambiguous.
func (s Sequence[T]) SingleWhere(predicate func(T) bool) (T, error) {
	e := s.Where(predicate).Enumerator()
	v, ok := advance(e)
	if !ok {
		return v, gserrors.NewStateError("query", "SingleWhere", "no element satisfies the predicate")
	}
	if e.MoveNext() {
		var zero T
		return zero, gserrors.NewStateError("query", "SingleWhere", "more than one element satisfies the predicate")
	}
	return v, nil
}

// SingleOrDefault returns the only element, or fallback when the sequence
// is empty. A sequence with more than one element still fails: emptiness is
// the only failure this variant tolerates.
func (s Sequence[T]) SingleOrDefault(fallback T) (T, error) {
	e := s.Enumerator()
	v, ok := advance(e)
	if !ok {
		return fallback, nil
	}
	if e.MoveNext() {
		var zero T
		return zero, gserrors.NewStateError("query", "SingleOrDefault", "sequence contains more than one element")
	}
	return v, nil
}

// SingleWhereOrDefault returns the only element satisfying the predicate,
// or fallback when none matches. An ambiguous match still fails.
func (s Sequence[T]) SingleWhereOrDefault(predicate func(T) bool, fallback T) (T, error) {
	e := s.Where(predicate).Enumerator()
	v, ok := advance(e)
	if !ok {
		return fallback, nil
	}
	if e.MoveNext() {
		var zero T
		return zero, gserrors.NewStateError("query", "SingleWhereOrDefault", "more than one element satisfies the predicate")
	}
	return v, nil
}

// ElementAt returns the element at the zero-based index. Fails with a
// RangeError when the index is negative or past the end.
func (s Sequence[T]) ElementAt(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, gserrors.NewRangeError("query", "index", index, "cannot be negative")
	}
	e := s.Enumerator()
	pos := 0
	for v, ok := advance(e); ok; v, ok = advance(e) {
		if pos == index {
			return v, nil
		}
		pos++
	}
	return zero, gserrors.NewRangeError("query", "index", index, "no element at this position").
		WithHint("sequence has fewer elements")
}

// ElementAtOrDefault returns the element at the zero-based index, or
// fallback when the index has no corresponding element.
func (s Sequence[T]) ElementAtOrDefault(index int, fallback T) T {
	v, err := s.ElementAt(index)
	if err != nil {
		return fallback
	}
	return v
}

// Aggregate folds the sequence into an accumulator, left to right.
func Aggregate[T, A any](s Sequence[T], seed A, accumulate func(A, T) A) A {
	acc := seed
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		acc = accumulate(acc, v)
	}
	return acc
}
