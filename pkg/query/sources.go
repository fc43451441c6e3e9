package query

import (
	"github.com/vnykmshr/goseq/pkg/common/validation"
)

// Indexable is the backing-provider contract for finite indexable
// collections: an ordered sequence with a known length and by-index access.
type Indexable[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at position i, 0 <= i < Len().
	At(i int) T
}

// FromSlice wraps a slice as a Sequence. The slice is not copied; queries
// observe its contents as of each traversal.
func FromSlice[T any](slice []T) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &sliceEnumerator[T]{slice: slice, index: -1}
	})
}

// Of wraps a single scalar as a one-element Sequence.
func Of[T any](value T) Sequence[T] {
	return FromSlice([]T{value})
}

// Empty creates a Sequence with no elements.
func Empty[T any]() Sequence[T] {
	return FromSlice[T](nil)
}

// FromIndexable wraps any indexable collection as a Sequence. The length is
// read lazily on the first MoveNext of each traversal, so providers backed
// by live data are re-measured per traversal.
func FromIndexable[T any](ix Indexable[T]) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &indexableEnumerator[T]{source: ix, index: -1}
	})
}

// Range creates a Sequence of count consecutive integers starting at start.
// A negative count fails with a RangeError at construction.
func Range(start, count int) (Sequence[int], error) {
	if err := validation.ValidateCount("query", "count", count); err != nil {
		return Sequence[int]{}, err
	}
	return NewSequence(func() Enumerator[int] {
		return &rangeEnumerator{start: start, count: count, offset: -1}
	}), nil
}

// Repeat creates a Sequence holding value count times. A negative count
// fails with a RangeError at construction.
func Repeat[T any](value T, count int) (Sequence[T], error) {
	if err := validation.ValidateCount("query", "count", count); err != nil {
		return Sequence[T]{}, err
	}
	return NewSequence(func() Enumerator[T] {
		return &repeatEnumerator[T]{value: value, count: count, offset: -1}
	}), nil
}

// Generate creates a Sequence driven by a generator function keyed by
// element index. The generator returns the element plus true, or false to
// end the sequence; a generator that never returns false yields an unbounded
// sequence usable with non-materializing operators only. Enumerators are
// resettable because the generator is re-driven from index zero.
func Generate[T any](generate func(i int) (T, bool)) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &generatorEnumerator[T]{generate: generate}
	})
}

// FromChannel wraps a receive channel as a Sequence. Channels cannot be
// rewound: Reset is a no-op and all enumerators drain the same channel, so
// channel sequences support a single traversal.
func FromChannel[T any](ch <-chan T) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &channelEnumerator[T]{ch: ch}
	})
}

// sliceEnumerator cursors over a slice. index -1 is the pre-first position;
// index == len(slice) is exhaustion.
type sliceEnumerator[T any] struct {
	slice []T
	index int
}

func (e *sliceEnumerator[T]) MoveNext() bool {
	if e.index < len(e.slice) {
		e.index++
	}
	return e.index < len(e.slice)
}

func (e *sliceEnumerator[T]) Current() (T, error) {
	if e.index < 0 || e.index >= len(e.slice) {
		var zero T
		return zero, errNoCurrent()
	}
	return e.slice[e.index], nil
}

func (e *sliceEnumerator[T]) Reset() {
	e.index = -1
}

// indexableEnumerator cursors over an Indexable, caching the length for the
// duration of one traversal.
type indexableEnumerator[T any] struct {
	source Indexable[T]
	length int
	index  int
	state  cursorState
}

func (e *indexableEnumerator[T]) MoveNext() bool {
	switch e.state {
	case stateNotStarted:
		e.length = e.source.Len()
		e.state = stateActive
	case stateExhausted:
		return false
	}

	e.index++
	if e.index >= e.length {
		e.state = stateExhausted
		return false
	}
	return true
}

func (e *indexableEnumerator[T]) Current() (T, error) {
	if e.state != stateActive || e.index < 0 {
		var zero T
		return zero, errNoCurrent()
	}
	return e.source.At(e.index), nil
}

func (e *indexableEnumerator[T]) Reset() {
	e.index = -1
	e.state = stateNotStarted
}

// rangeEnumerator yields start, start+1, ... start+count-1.
type rangeEnumerator struct {
	start  int
	count  int
	offset int
}

func (e *rangeEnumerator) MoveNext() bool {
	if e.offset < e.count {
		e.offset++
	}
	return e.offset < e.count
}

func (e *rangeEnumerator) Current() (int, error) {
	if e.offset < 0 || e.offset >= e.count {
		return 0, errNoCurrent()
	}
	return e.start + e.offset, nil
}

func (e *rangeEnumerator) Reset() {
	e.offset = -1
}

// repeatEnumerator yields the same value count times.
type repeatEnumerator[T any] struct {
	value  T
	count  int
	offset int
}

func (e *repeatEnumerator[T]) MoveNext() bool {
	if e.offset < e.count {
		e.offset++
	}
	return e.offset < e.count
}

func (e *repeatEnumerator[T]) Current() (T, error) {
	if e.offset < 0 || e.offset >= e.count {
		var zero T
		return zero, errNoCurrent()
	}
	return e.value, nil
}

func (e *repeatEnumerator[T]) Reset() {
	e.offset = -1
}

// generatorEnumerator drives a generator function. Exhaustion is sticky.
type generatorEnumerator[T any] struct {
	generate func(i int) (T, bool)
	index    int
	current  T
	state    cursorState
}

func (e *generatorEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}

	v, ok := e.generate(e.index)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.index++
	e.current = v
	e.state = stateActive
	return true
}

func (e *generatorEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *generatorEnumerator[T]) Reset() {
	e.index = 0
	e.state = stateNotStarted
}

// channelEnumerator receives from a channel. Reset cannot rewind a channel.
type channelEnumerator[T any] struct {
	ch      <-chan T
	current T
	state   cursorState
}

func (e *channelEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}

	v, ok := <-e.ch
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.current = v
	e.state = stateActive
	return true
}

func (e *channelEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *channelEnumerator[T]) Reset() {
	// Channels are single-shot; there is no pre-first position to return to.
}
