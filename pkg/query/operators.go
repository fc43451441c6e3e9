package query

// Where returns a sequence of the elements satisfying the predicate, in
// their original relative order.
func (s Sequence[T]) Where(predicate func(T) bool) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &whereEnumerator[T]{parent: s.Enumerator(), predicate: predicate}
	})
}

// Select returns a sequence of the results of applying the selector to each
// element. Type-changing operators are package-level functions because Go
// methods cannot introduce type parameters.
func Select[T, R any](s Sequence[T], selector func(T) R) Sequence[R] {
	return SelectIndexed(s, func(v T, _ int) R { return selector(v) })
}

// SelectIndexed is Select with the element's zero-based position passed to
// the selector.
func SelectIndexed[T, R any](s Sequence[T], selector func(T, int) R) Sequence[R] {
	return NewSequence(func() Enumerator[R] {
		return &selectEnumerator[T, R]{parent: s.Enumerator(), selector: selector, index: -1}
	})
}

// SelectMany maps each element to a sequence and flattens the results.
func SelectMany[T, R any](s Sequence[T], selector func(T) Sequence[R]) Sequence[R] {
	return NewSequence(func() Enumerator[R] {
		return &selectManyEnumerator[T, R]{outer: s.Enumerator(), selector: selector}
	})
}

// Take returns a sequence of at most count leading elements. Counts at or
// below zero produce an empty sequence.
func (s Sequence[T]) Take(count int) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &takeEnumerator[T]{parent: s.Enumerator(), count: count}
	})
}

// Skip returns a sequence without the first count elements. Counts at or
// below zero skip nothing.
func (s Sequence[T]) Skip(count int) Sequence[T] {
	return s.SkipWhileIndexed(func(_ T, i int) bool { return i < count })
}

// TakeWhile returns leading elements while the predicate holds. Once the
// predicate fails the sequence is closed for good: later MoveNext calls
// return false without re-opening, even if later elements would match.
func (s Sequence[T]) TakeWhile(predicate func(T) bool) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &takeWhileEnumerator[T]{parent: s.Enumerator(), predicate: predicate}
	})
}

// SkipWhile drops leading elements while the predicate holds, then yields
// the rest. The prefix scan runs lazily on the first MoveNext.
func (s Sequence[T]) SkipWhile(predicate func(T) bool) Sequence[T] {
	return s.SkipWhileIndexed(func(v T, _ int) bool { return predicate(v) })
}

// SkipWhileIndexed is SkipWhile with the element's zero-based position
// passed to the predicate.
func (s Sequence[T]) SkipWhileIndexed(predicate func(T, int) bool) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &skipWhileEnumerator[T]{parent: s.Enumerator(), predicate: predicate}
	})
}

// Concat returns this sequence followed by other.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &concatEnumerator[T]{first: s.Enumerator(), second: other.Enumerator()}
	})
}

// Reverse returns the sequence in reverse order. The source is materialized
// on the first MoveNext; Reset rewinds the buffer without re-reading the
// source.
func (s Sequence[T]) Reverse() Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &reverseEnumerator[T]{parent: s.Enumerator()}
	})
}

// DefaultIfEmpty returns the sequence itself, or a one-element sequence
// holding fallback when the source is empty.
func (s Sequence[T]) DefaultIfEmpty(fallback T) Sequence[T] {
	return NewSequence(func() Enumerator[T] {
		return &defaultIfEmptyEnumerator[T]{parent: s.Enumerator(), fallback: fallback}
	})
}

// Zip pairs elements of two sequences positionally, stopping at the shorter.
func Zip[A, B, R any](first Sequence[A], second Sequence[B], selector func(A, B) R) Sequence[R] {
	return NewSequence(func() Enumerator[R] {
		return &zipEnumerator[A, B, R]{
			first:    first.Enumerator(),
			second:   second.Enumerator(),
			selector: selector,
		}
	})
}

// whereEnumerator keeps the last matched element plus a state flag.
type whereEnumerator[T any] struct {
	parent    Enumerator[T]
	predicate func(T) bool
	current   T
	state     cursorState
}

func (e *whereEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	for v, ok := advance(e.parent); ok; v, ok = advance(e.parent) {
		if e.predicate(v) {
			e.current = v
			e.state = stateActive
			return true
		}
	}
	e.state = stateExhausted
	return false
}

func (e *whereEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *whereEnumerator[T]) Reset() {
	e.parent.Reset()
	e.state = stateNotStarted
}

// selectEnumerator keeps the running element index for the selector.
type selectEnumerator[T, R any] struct {
	parent   Enumerator[T]
	selector func(T, int) R
	index    int
	current  R
	state    cursorState
}

func (e *selectEnumerator[T, R]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	v, ok := advance(e.parent)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.index++
	e.current = e.selector(v, e.index)
	e.state = stateActive
	return true
}

func (e *selectEnumerator[T, R]) Current() (R, error) {
	if e.state != stateActive {
		var zero R
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *selectEnumerator[T, R]) Reset() {
	e.parent.Reset()
	e.index = -1
	e.state = stateNotStarted
}

// selectManyEnumerator walks the outer cursor, flattening one inner cursor
// at a time.
type selectManyEnumerator[T, R any] struct {
	outer    Enumerator[T]
	selector func(T) Sequence[R]
	inner    Enumerator[R]
	current  R
	state    cursorState
}

func (e *selectManyEnumerator[T, R]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	for {
		if e.inner != nil {
			if v, ok := advance(e.inner); ok {
				e.current = v
				e.state = stateActive
				return true
			}
			e.inner = nil
		}

		o, ok := advance(e.outer)
		if !ok {
			e.state = stateExhausted
			return false
		}
		e.inner = e.selector(o).Enumerator()
	}
}

func (e *selectManyEnumerator[T, R]) Current() (R, error) {
	if e.state != stateActive {
		var zero R
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *selectManyEnumerator[T, R]) Reset() {
	e.outer.Reset()
	e.inner = nil
	e.state = stateNotStarted
}

// takeEnumerator closes after count elements.
type takeEnumerator[T any] struct {
	parent  Enumerator[T]
	count   int
	taken   int
	current T
	state   cursorState
}

func (e *takeEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted || e.taken >= e.count {
		e.state = stateExhausted
		return false
	}
	v, ok := advance(e.parent)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.taken++
	e.current = v
	e.state = stateActive
	return true
}

func (e *takeEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *takeEnumerator[T]) Reset() {
	e.parent.Reset()
	e.taken = 0
	e.state = stateNotStarted
}

// takeWhileEnumerator holds a sticky closed flag: once the predicate fails
// or the parent ends, the cursor never re-opens.
type takeWhileEnumerator[T any] struct {
	parent    Enumerator[T]
	predicate func(T) bool
	current   T
	state     cursorState
}

func (e *takeWhileEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	v, ok := advance(e.parent)
	if !ok || !e.predicate(v) {
		e.state = stateExhausted
		return false
	}
	e.current = v
	e.state = stateActive
	return true
}

func (e *takeWhileEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *takeWhileEnumerator[T]) Reset() {
	e.parent.Reset()
	e.state = stateNotStarted
}

// skipWhileEnumerator scans past the matching prefix on the first MoveNext,
// then forwards the parent verbatim.
type skipWhileEnumerator[T any] struct {
	parent    Enumerator[T]
	predicate func(T, int) bool
	skipped   bool
	current   T
	state     cursorState
}

func (e *skipWhileEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}

	if !e.skipped {
		e.skipped = true
		index := 0
		for v, ok := advance(e.parent); ok; v, ok = advance(e.parent) {
			if !e.predicate(v, index) {
				e.current = v
				e.state = stateActive
				return true
			}
			index++
		}
		e.state = stateExhausted
		return false
	}

	v, ok := advance(e.parent)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.current = v
	e.state = stateActive
	return true
}

func (e *skipWhileEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *skipWhileEnumerator[T]) Reset() {
	e.parent.Reset()
	e.skipped = false
	e.state = stateNotStarted
}

// concatEnumerator drains the first parent, then the second.
type concatEnumerator[T any] struct {
	first    Enumerator[T]
	second   Enumerator[T]
	onSecond bool
	current  T
	state    cursorState
}

func (e *concatEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}

	if !e.onSecond {
		if v, ok := advance(e.first); ok {
			e.current = v
			e.state = stateActive
			return true
		}
		e.onSecond = true
	}

	v, ok := advance(e.second)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.current = v
	e.state = stateActive
	return true
}

func (e *concatEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *concatEnumerator[T]) Reset() {
	e.first.Reset()
	e.second.Reset()
	e.onSecond = false
	e.state = stateNotStarted
}

// reverseEnumerator materializes the parent once, then walks the buffer
// backwards. The buffer survives Reset.
type reverseEnumerator[T any] struct {
	parent      Enumerator[T]
	buf         []T
	pos         int
	initialized bool
}

func (e *reverseEnumerator[T]) MoveNext() bool {
	if !e.initialized {
		e.buf = drain(e.parent)
		e.pos = len(e.buf)
		e.initialized = true
	}
	if e.pos > 0 {
		e.pos--
		return true
	}
	e.pos = -1
	return false
}

func (e *reverseEnumerator[T]) Current() (T, error) {
	if !e.initialized || e.pos < 0 || e.pos >= len(e.buf) {
		var zero T
		return zero, errNoCurrent()
	}
	return e.buf[e.pos], nil
}

func (e *reverseEnumerator[T]) Reset() {
	if e.initialized {
		e.pos = len(e.buf)
	}
}

// defaultIfEmptyEnumerator forwards the parent, substituting a single
// fallback element when the parent turns out to be empty.
type defaultIfEmptyEnumerator[T any] struct {
	parent   Enumerator[T]
	fallback T
	started  bool
	current  T
	state    cursorState
}

func (e *defaultIfEmptyEnumerator[T]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}

	if v, ok := advance(e.parent); ok {
		e.started = true
		e.current = v
		e.state = stateActive
		return true
	}

	if !e.started {
		// Empty parent: emit the fallback exactly once.
		e.started = true
		e.current = e.fallback
		e.state = stateActive
		return true
	}

	e.state = stateExhausted
	return false
}

func (e *defaultIfEmptyEnumerator[T]) Current() (T, error) {
	if e.state != stateActive {
		var zero T
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *defaultIfEmptyEnumerator[T]) Reset() {
	e.parent.Reset()
	e.started = false
	e.state = stateNotStarted
}

// zipEnumerator advances both parents in lockstep.
type zipEnumerator[A, B, R any] struct {
	first    Enumerator[A]
	second   Enumerator[B]
	selector func(A, B) R
	current  R
	state    cursorState
}

func (e *zipEnumerator[A, B, R]) MoveNext() bool {
	if e.state == stateExhausted {
		return false
	}
	a, ok := advance(e.first)
	if !ok {
		e.state = stateExhausted
		return false
	}
	b, ok := advance(e.second)
	if !ok {
		e.state = stateExhausted
		return false
	}
	e.current = e.selector(a, b)
	e.state = stateActive
	return true
}

func (e *zipEnumerator[A, B, R]) Current() (R, error) {
	if e.state != stateActive {
		var zero R
		return zero, errNoCurrent()
	}
	return e.current, nil
}

func (e *zipEnumerator[A, B, R]) Reset() {
	e.first.Reset()
	e.second.Reset()
	e.state = stateNotStarted
}
