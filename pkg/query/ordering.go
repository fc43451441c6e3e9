package query

import (
	"cmp"
	"sort"
)

// sortKey is one link of an ordering chain: a key comparison composed from a
// selector and a key comparer, plus the sort direction.
type sortKey[T any] struct {
	compare    func(a, b T) int
	descending bool
}

// OrderedSequence is a Sequence that re-sorts its original source under an
// immutable chain of sort keys. ThenBy / ThenByDescending do not re-sort the
// already-ordered intermediate; they build a fresh OrderedSequence over the
// original source with the extended chain, so one stable sort pass serves
// the whole chain.
type OrderedSequence[T any] struct {
	Sequence[T]
	source Sequence[T]
	keys   []sortKey[T]
}

// OrderBy sorts the sequence ascending by a naturally-ordered key.
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) OrderedSequence[T] {
	return OrderByFunc(s, key, cmp.Compare[K])
}

// OrderByFunc sorts the sequence ascending by a key under a caller-supplied
// ordering comparer.
func OrderByFunc[T, K any](s Sequence[T], key func(T) K, compare func(a, b K) int) OrderedSequence[T] {
	return newOrdered(s, []sortKey[T]{composeKey(key, compare, false)})
}

// OrderByDescending sorts the sequence descending by a naturally-ordered key.
func OrderByDescending[T any, K cmp.Ordered](s Sequence[T], key func(T) K) OrderedSequence[T] {
	return OrderByDescendingFunc(s, key, cmp.Compare[K])
}

// OrderByDescendingFunc sorts the sequence descending by a key under a
// caller-supplied ordering comparer.
func OrderByDescendingFunc[T, K any](s Sequence[T], key func(T) K, compare func(a, b K) int) OrderedSequence[T] {
	return newOrdered(s, []sortKey[T]{composeKey(key, compare, true)})
}

// ThenBy appends an ascending tie-breaking key to the ordering chain.
func ThenBy[T any, K cmp.Ordered](o OrderedSequence[T], key func(T) K) OrderedSequence[T] {
	return ThenByFunc(o, key, cmp.Compare[K])
}

// ThenByFunc appends an ascending tie-breaking key compared by a
// caller-supplied ordering comparer.
func ThenByFunc[T, K any](o OrderedSequence[T], key func(T) K, compare func(a, b K) int) OrderedSequence[T] {
	return newOrdered(o.source, appendKey(o.keys, composeKey(key, compare, false)))
}

// ThenByDescending appends a descending tie-breaking key to the ordering chain.
func ThenByDescending[T any, K cmp.Ordered](o OrderedSequence[T], key func(T) K) OrderedSequence[T] {
	return ThenByDescendingFunc(o, key, cmp.Compare[K])
}

// ThenByDescendingFunc appends a descending tie-breaking key compared by a
// caller-supplied ordering comparer.
func ThenByDescendingFunc[T, K any](o OrderedSequence[T], key func(T) K, compare func(a, b K) int) OrderedSequence[T] {
	return newOrdered(o.source, appendKey(o.keys, composeKey(key, compare, true)))
}

func composeKey[T, K any](key func(T) K, compare func(a, b K) int, descending bool) sortKey[T] {
	return sortKey[T]{
		compare:    func(a, b T) int { return compare(key(a), key(b)) },
		descending: descending,
	}
}

// appendKey copies the chain so earlier OrderedSequence values stay immutable.
func appendKey[T any](keys []sortKey[T], k sortKey[T]) []sortKey[T] {
	extended := make([]sortKey[T], len(keys)+1)
	copy(extended, keys)
	extended[len(keys)] = k
	return extended
}

func newOrdered[T any](source Sequence[T], keys []sortKey[T]) OrderedSequence[T] {
	o := OrderedSequence[T]{source: source, keys: keys}
	o.Sequence = NewSequence(func() Enumerator[T] {
		return &orderedEnumerator[T]{parent: source.Enumerator(), keys: keys}
	})
	return o
}

// compareChain evaluates links from last-appended to first-appended, scaling
// each non-zero result by the link's direction. The primary key runs last,
// so it has the final say; secondary keys only survive where earlier links
// tie. A full tie returns 0 and leaves the stable sort's relative order.
func compareChain[T any](keys []sortKey[T], a, b T) int {
	result := 0
	for i := len(keys) - 1; i >= 0; i-- {
		if c := keys[i].compare(a, b); c != 0 {
			if keys[i].descending {
				c = -c
			}
			result = c
		}
	}
	return result
}

// orderedEnumerator materializes and stable-sorts the source once, on the
// first MoveNext. Reset rewinds the cached sorted buffer without re-sorting.
type orderedEnumerator[T any] struct {
	parent      Enumerator[T]
	keys        []sortKey[T]
	buf         []T
	pos         int
	initialized bool
}

func (e *orderedEnumerator[T]) MoveNext() bool {
	if !e.initialized {
		e.buf = drain(e.parent)
		keys := e.keys
		sort.SliceStable(e.buf, func(i, j int) bool {
			return compareChain(keys, e.buf[i], e.buf[j]) < 0
		})
		e.pos = -1
		e.initialized = true
	}
	if e.pos < len(e.buf) {
		e.pos++
	}
	return e.pos < len(e.buf)
}

func (e *orderedEnumerator[T]) Current() (T, error) {
	if !e.initialized || e.pos < 0 || e.pos >= len(e.buf) {
		var zero T
		return zero, errNoCurrent()
	}
	return e.buf[e.pos], nil
}

func (e *orderedEnumerator[T]) Reset() {
	if e.initialized {
		e.pos = -1
	}
}
