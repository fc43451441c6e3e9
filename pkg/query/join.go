package query

import (
	"github.com/vnykmshr/goseq/pkg/query/hash"
)

// Join correlates two sequences on matching keys with inner-join semantics:
// one result per matching (outer, inner) pair, nothing for unmatched outer
// elements. The inner side is hashed into key buckets on the first MoveNext
// (O(|inner|) with comparable keys); the outer side then streams through
// once, expanding each element against its bucket incrementally rather than
// materializing a cross product.
func Join[O, I any, K comparable, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) Sequence[R] {
	return joinWith(outer, inner, outerKey, innerKey, result, hash.New[K, []I])
}

// JoinFunc is Join under a caller-supplied key equality comparer. Building
// the bucket table degrades to O(|inner|²) worst case because key matching
// scans linearly; this is the documented cost of custom key equality.
func JoinFunc[O, I, K, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
	equal func(a, b K) bool,
) Sequence[R] {
	return joinWith(outer, inner, outerKey, innerKey, result, func() *hash.Hash[K, []I] {
		return hash.NewFunc[K, []I](equal)
	})
}

func joinWith[O, I, K, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
	newLookup func() *hash.Hash[K, []I],
) Sequence[R] {
	return NewSequence(func() Enumerator[R] {
		return &joinEnumerator[O, I, K, R]{
			outer:     outer.Enumerator(),
			inner:     inner,
			outerKey:  outerKey,
			innerKey:  innerKey,
			result:    result,
			newLookup: newLookup,
		}
	})
}

// GroupJoin correlates two sequences on matching keys, producing one result
// per outer element paired with the (possibly empty) group of all matching
// inner elements.
func GroupJoin[O, I any, K comparable, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, Sequence[I]) R,
) Sequence[R] {
	return groupJoinWith(outer, inner, outerKey, innerKey, result, hash.New[K, []I])
}

// GroupJoinFunc is GroupJoin under a caller-supplied key equality comparer.
func GroupJoinFunc[O, I, K, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, Sequence[I]) R,
	equal func(a, b K) bool,
) Sequence[R] {
	return groupJoinWith(outer, inner, outerKey, innerKey, result, func() *hash.Hash[K, []I] {
		return hash.NewFunc[K, []I](equal)
	})
}

func groupJoinWith[O, I, K, R any](
	outer Sequence[O],
	inner Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, Sequence[I]) R,
	newLookup func() *hash.Hash[K, []I],
) Sequence[R] {
	return NewSequence(func() Enumerator[R] {
		return &groupJoinEnumerator[O, I, K, R]{
			outer:     outer.Enumerator(),
			inner:     inner,
			outerKey:  outerKey,
			innerKey:  innerKey,
			result:    result,
			newLookup: newLookup,
		}
	})
}

// buildLookup drains the inner side into key buckets.
func buildLookup[I, K any](inner Sequence[I], innerKey func(I) K, newLookup func() *hash.Hash[K, []I]) *hash.Hash[K, []I] {
	lookup := newLookup()
	e := inner.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		lookup.LookUp(innerKey(v), func(bucket []I, _ bool) ([]I, bool) {
			return append(bucket, v), true
		})
	}
	return lookup
}

// joinEnumerator streams the outer side, keeping a bucket-index cursor so
// matches are produced one MoveNext at a time. The inner lookup table
// survives Reset; the outer cursor replays.
type joinEnumerator[O, I, K, R any] struct {
	outer     Enumerator[O]
	inner     Sequence[I]
	outerKey  func(O) K
	innerKey  func(I) K
	result    func(O, I) R
	newLookup func() *hash.Hash[K, []I]

	lookup    *hash.Hash[K, []I]
	bucket    []I
	bucketPos int
	outerCur  O
	current   R
	state     cursorState
}

func (e *joinEnumerator[O, I, K, R]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	if e.lookup == nil {
		e.lookup = buildLookup(e.inner, e.innerKey, e.newLookup)
	}

	for {
		if e.bucketPos < len(e.bucket) {
			e.current = e.result(e.outerCur, e.bucket[e.bucketPos])
			e.bucketPos++
			e.state = stateActive
			return true
		}

		o, ok := advance(e.outer)
		if !ok {
			e.state = stateExhausted
			return false
		}
		e.outerCur = o
		e.bucket, _ = e.lookup.Get(e.outerKey(o))
		e.bucketPos = 0
	}
}

func (e *joinEnumerator[O, I, K, R]) Current() (R, error) {
	if e.state != stateActive {
		var zero R
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *joinEnumerator[O, I, K, R]) Reset() {
	e.outer.Reset()
	e.bucket = nil
	e.bucketPos = 0
	e.state = stateNotStarted
}

// groupJoinEnumerator emits one result per outer element, paired with its
// bucket as a sequence (empty when no inner element matched).
type groupJoinEnumerator[O, I, K, R any] struct {
	outer     Enumerator[O]
	inner     Sequence[I]
	outerKey  func(O) K
	innerKey  func(I) K
	result    func(O, Sequence[I]) R
	newLookup func() *hash.Hash[K, []I]

	lookup  *hash.Hash[K, []I]
	current R
	state   cursorState
}

func (e *groupJoinEnumerator[O, I, K, R]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	if e.lookup == nil {
		e.lookup = buildLookup(e.inner, e.innerKey, e.newLookup)
	}

	o, ok := advance(e.outer)
	if !ok {
		e.state = stateExhausted
		return false
	}
	bucket, _ := e.lookup.Get(e.outerKey(o))
	e.current = e.result(o, FromSlice(bucket))
	e.state = stateActive
	return true
}

func (e *groupJoinEnumerator[O, I, K, R]) Current() (R, error) {
	if e.state != stateActive {
		var zero R
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *groupJoinEnumerator[O, I, K, R]) Reset() {
	e.outer.Reset()
	e.state = stateNotStarted
}
