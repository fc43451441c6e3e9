package query

import (
	"github.com/vnykmshr/goseq/pkg/query/hash"
)

// Grouping is one group produced by GroupBy or GroupJoin: a key plus the
// sequence of elements sharing it. The embedded Sequence makes every
// operator available on the group directly.
type Grouping[K, V any] struct {
	Key K
	Sequence[V]
}

// GroupBy partitions the sequence by a comparable key, one Grouping per
// distinct key in first-occurrence order.
//
// Overloads are spelled as separate functions rather than resolved from
// callback shape: GroupBySelect adds an element selector, the Func variants
// take a key equality comparer, and result shaping is an ordinary Select
// over the groupings.
func GroupBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[Grouping[K, T]] {
	return GroupBySelect(s, key, func(v T) T { return v })
}

// GroupByFunc is GroupBy under a caller-supplied key equality comparer
// (linear-scan key matching).
func GroupByFunc[T, K any](s Sequence[T], key func(T) K, equal func(a, b K) bool) Sequence[Grouping[K, T]] {
	return GroupBySelectFunc(s, key, func(v T) T { return v }, equal)
}

// GroupBySelect is GroupBy with an element selector applied to each member
// before it is added to its group.
func GroupBySelect[T any, K comparable, E any](s Sequence[T], key func(T) K, element func(T) E) Sequence[Grouping[K, E]] {
	return groupWith(s, key, element, hash.New[K, []E])
}

// GroupBySelectFunc is GroupBySelect under a caller-supplied key equality
// comparer.
func GroupBySelectFunc[T, K, E any](s Sequence[T], key func(T) K, element func(T) E, equal func(a, b K) bool) Sequence[Grouping[K, E]] {
	return groupWith(s, key, element, func() *hash.Hash[K, []E] {
		return hash.NewFunc[K, []E](equal)
	})
}

func groupWith[T, K, E any](s Sequence[T], key func(T) K, element func(T) E, newBuckets func() *hash.Hash[K, []E]) Sequence[Grouping[K, E]] {
	return NewSequence(func() Enumerator[Grouping[K, E]] {
		return &groupEnumerator[T, K, E]{
			parent:     s.Enumerator(),
			key:        key,
			element:    element,
			newBuckets: newBuckets,
			pos:        -1,
		}
	})
}

// groupEnumerator buckets the whole source on the first MoveNext, then
// walks the groups in first-occurrence key order. The grouped buffer
// survives Reset.
type groupEnumerator[T, K, E any] struct {
	parent      Enumerator[T]
	key         func(T) K
	element     func(T) E
	newBuckets  func() *hash.Hash[K, []E]
	groups      []Grouping[K, E]
	pos         int
	initialized bool
}

func (e *groupEnumerator[T, K, E]) MoveNext() bool {
	if !e.initialized {
		e.materialize()
	}
	if e.pos < len(e.groups) {
		e.pos++
	}
	return e.pos < len(e.groups)
}

func (e *groupEnumerator[T, K, E]) materialize() {
	buckets := e.newBuckets()
	var order []K

	for v, ok := advance(e.parent); ok; v, ok = advance(e.parent) {
		k := e.key(v)
		el := e.element(v)
		existed := buckets.LookUp(k, func(bucket []E, _ bool) ([]E, bool) {
			return append(bucket, el), true
		})
		if !existed {
			order = append(order, k)
		}
	}

	e.groups = make([]Grouping[K, E], 0, len(order))
	for _, k := range order {
		bucket, _ := buckets.Get(k)
		e.groups = append(e.groups, Grouping[K, E]{Key: k, Sequence: FromSlice(bucket)})
	}
	e.pos = -1
	e.initialized = true
}

func (e *groupEnumerator[T, K, E]) Current() (Grouping[K, E], error) {
	if !e.initialized || e.pos < 0 || e.pos >= len(e.groups) {
		var zero Grouping[K, E]
		return zero, errNoCurrent()
	}
	return e.groups[e.pos], nil
}

func (e *groupEnumerator[T, K, E]) Reset() {
	if e.initialized {
		e.pos = -1
	}
}
