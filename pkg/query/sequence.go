package query

import (
	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

// Enumerator is a mutable cursor over a Sequence. A fresh Enumerator sits
// before the first element; MoveNext advances it and reports whether an
// element is available. Current returns the element under the cursor and
// fails with a StateError (wrapping errors.ErrInvalidState) when called
// before the first successful MoveNext, after exhaustion, or after Reset.
// Reset returns the cursor to its pre-first position; operators that
// materialized a buffer keep it and replay it on the next traversal.
//
// Driving the same Enumerator from multiple goroutines is undefined
// behavior. Independent enumerators obtained from the same Sequence are
// fully isolated and may be interleaved freely.
type Enumerator[T any] interface {
	// MoveNext advances to the next element and reports whether one exists.
	// Once it returns false it keeps returning false until Reset.
	MoveNext() bool

	// Current returns the element under the cursor.
	Current() (T, error)

	// Reset rewinds the cursor to its pre-first position.
	Reset()
}

// Sequence is an immutable, possibly-lazy source of elements. Operators
// return new Sequences wrapping their parents in O(1) without consuming any
// parent elements; work happens on the first MoveNext of an enumerator
// obtained from the outermost operator.
type Sequence[T any] struct {
	enumerate func() Enumerator[T]
}

// NewSequence creates a Sequence from an enumerator factory. Each call of
// the factory must produce an independent cursor.
func NewSequence[T any](enumerate func() Enumerator[T]) Sequence[T] {
	return Sequence[T]{enumerate: enumerate}
}

// Enumerator mints a fresh cursor over the sequence. Cursors from separate
// calls never share state.
func (s Sequence[T]) Enumerator() Enumerator[T] {
	if s.enumerate == nil {
		return &sliceEnumerator[T]{index: -1}
	}
	return s.enumerate()
}

// cursorState tracks where an operator enumerator is in its lifecycle.
type cursorState int8

const (
	stateNotStarted cursorState = iota
	stateActive
	stateExhausted
)

// errNoCurrent is the protocol-violation error returned by Current.
func errNoCurrent() error {
	return gserrors.NewStateError("query", "Current",
		"no current element (MoveNext not called or sequence exhausted)")
}

// advance is MoveNext followed by Current, collapsed for operator internals.
// The error branch is unreachable after a successful MoveNext.
func advance[T any](e Enumerator[T]) (T, bool) {
	if !e.MoveNext() {
		var zero T
		return zero, false
	}
	v, err := e.Current()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// drain materializes the remainder of an enumerator into a slice.
func drain[T any](e Enumerator[T]) []T {
	var buf []T
	for v, ok := advance(e); ok; v, ok = advance(e) {
		buf = append(buf, v)
	}
	return buf
}

// defaultEqual is the process-wide default equality comparer.
func defaultEqual[T comparable](a, b T) bool {
	return a == b
}
