package query

import (
	"github.com/vnykmshr/goseq/pkg/query/hash"
)

// Distinct returns a sequence of first occurrences, dropping duplicates
// under native equality. Input order is preserved; a map-backed seen-set
// gives O(1) membership probes.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return distinctWith(s, hash.New[T, struct{}])
}

// DistinctFunc is Distinct under a caller-supplied equality comparer. The
// seen-set matches with the comparer via linear scans, an O(n) cost per
// element that keeps the comparer's equality semantics intact.
func (s Sequence[T]) DistinctFunc(equal func(a, b T) bool) Sequence[T] {
	return distinctWith(s, func() *hash.Hash[T, struct{}] {
		return hash.NewFunc[T, struct{}](equal)
	})
}

func distinctWith[T any](s Sequence[T], newSeen func() *hash.Hash[T, struct{}]) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &distinctEnumerator[T]{parent: s.Enumerator(), newSeen: newSeen}
	})
}

// Union returns the distinct elements of both sequences, ordered by first
// occurrence across the concatenation.
func Union[T comparable](first, second Sequence[T]) Sequence[T] {
	return Distinct(first.Concat(second))
}

// UnionFunc is Union under a caller-supplied equality comparer.
func (s Sequence[T]) UnionFunc(other Sequence[T], equal func(a, b T) bool) Sequence[T] {
	return s.Concat(other).DistinctFunc(equal)
}

// Intersect returns the distinct elements of the first sequence that also
// appear in the second. Membership is tested by scanning the materialized
// second sequence, O(|second|) per element; the quadratic worst case is a
// documented property of this operator.
func Intersect[T comparable](first, second Sequence[T]) Sequence[T] {
	return first.IntersectFunc(second, defaultEqual[T])
}

// IntersectFunc is Intersect under a caller-supplied equality comparer.
func (s Sequence[T]) IntersectFunc(other Sequence[T], equal func(a, b T) bool) Sequence[T] {
	distinct := s.DistinctFunc(equal)
	return NewSequence(func() Enumerator[T] {
		return &membershipEnumerator[T]{
			parent: distinct.Enumerator(),
			other:  other,
			equal:  equal,
			keep:   true,
		}
	})
}

// Except returns the elements of the first sequence with no match in the
// second: the complement of the same membership test Intersect uses, with
// the same documented O(|second|)-per-element cost.
func Except[T comparable](first, second Sequence[T]) Sequence[T] {
	return first.ExceptFunc(second, defaultEqual[T])
}

// ExceptFunc is Except under a caller-supplied equality comparer.
func (s Sequence[T]) ExceptFunc(other Sequence[T], equal func(a, b T) bool) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &membershipEnumerator[T]{
			parent: s.Enumerator(),
			other:  other,
			equal:  equal,
			keep:   false,
		}
	})
}

// Contains reports whether the sequence holds value under native equality.
func Contains[T comparable](s Sequence[T], value T) bool {
	return s.ContainsFunc(value, defaultEqual[T])
}

// ContainsFunc reports whether the sequence holds value under the supplied
// equality comparer.
func (s Sequence[T]) ContainsFunc(value T, equal func(a, b T) bool) bool {
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		if equal(v, value) {
			return true
		}
	}
	return false
}

// distinctEnumerator filters to first occurrences using a lazily-built
// seen-set. Reset rebuilds the set on the next traversal.
type distinctEnumerator[T any] struct {
	parent  Enumerator[T]
	newSeen func() *hash.Hash[T, struct{}]
	seen    *hash.Hash[T, struct{}]
	current T
	state   cursorState
}

func (e *distinctEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	if e.seen == nil {
		e.seen = e.newSeen()
	}

	for v, ok := advance(e.parent); ok; v, ok = advance(e.parent) {
		if e.seen.Put(v, struct{}{}, false) {
			e.current = v
			e.state = stateActive
			return true
		}
	}
	e.state = stateExhausted
	return false
}

func (e *distinctEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *distinctEnumerator[T]) Reset() {
	e.parent.Reset()
	e.seen = nil
	e.state = stateNotStarted
}

// membershipEnumerator filters the parent by (non-)membership in the other
// sequence, materialized once on first MoveNext. The membership buffer
// survives Reset.
type membershipEnumerator[T any] struct {
	parent  Enumerator[T]
	other   Sequence[T]
	equal   func(a, b T) bool
	keep    bool
	buf     []T
	loaded  bool
	current T
	state   cursorState
}

func (e *membershipEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	if !e.loaded {
		e.buf = drain(e.other.Enumerator())
		e.loaded = true
	}

	for v, ok := advance(e.parent); ok; v, ok = advance(e.parent) {
		if e.member(v) == e.keep {
			e.current = v
			e.state = stateActive
			return true
		}
	}
	e.state = stateExhausted
	return false
}

func (e *membershipEnumerator[T]) member(v T) bool {
	for i := range e.buf {
		if e.equal(v, e.buf[i]) {
			return true
		}
	}
	return false
}

func (e *membershipEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *membershipEnumerator[T]) Reset() {
	e.parent.Reset()
	e.state = stateNotStarted
}
