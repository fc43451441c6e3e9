package query

import (
	"cmp"

	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

// Number covers the built-in numeric types usable with Sum and Average.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up all elements. An empty sequence sums to zero.
func Sum[T Number](s Sequence[T]) T {
	return Aggregate(s, T(0), func(acc, v T) T { return acc + v })
}

// Average returns the arithmetic mean. Fails on an empty sequence.
func Average[T Number](s Sequence[T]) (float64, error) {
	var sum T
	n := 0
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		sum += v
		n++
	}
	if n == 0 {
		return 0, gserrors.NewStateError("query", "Average", "sequence contains no elements")
	}
	return float64(sum) / float64(n), nil
}

// Min returns the smallest element under natural ordering. Fails on an
// empty sequence.
func Min[T cmp.Ordered](s Sequence[T]) (T, error) {
	return MinFunc(s, cmp.Compare[T])
}

// MinFunc returns the smallest element under a caller-supplied ordering
// comparer. Fails on an empty sequence.
func MinFunc[T any](s Sequence[T], compare func(a, b T) int) (T, error) {
	var best T
	found := false
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		if !found || compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	if !found {
		return best, gserrors.NewStateError("query", "Min", "sequence contains no elements")
	}
	return best, nil
}

// Max returns the largest element under natural ordering. Fails on an empty
// sequence.
func Max[T cmp.Ordered](s Sequence[T]) (T, error) {
	return MaxFunc(s, cmp.Compare[T])
}

// MaxFunc returns the largest element under a caller-supplied ordering
// comparer. Fails on an empty sequence.
func MaxFunc[T any](s Sequence[T], compare func(a, b T) int) (T, error) {
	var best T
	found := false
	e := s.Enumerator()
	for v, ok := advance(e); ok; v, ok = advance(e) {
		if !found || compare(v, best) > 0 {
			best = v
			found = true
		}
	}
	if !found {
		return best, gserrors.NewStateError("query", "Max", "sequence contains no elements")
	}
	return best, nil
}
