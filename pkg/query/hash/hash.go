package hash

// Entry is a single (key, value) binding held by a Hash.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// strategy decides how keys are located. The equality rule of a Hash is
// fixed at construction and never changes afterwards.
type strategy[K, V any] interface {
	// lookUp is the single primitive underlying every Hash operation. fn
	// receives the existing value (zero value when absent) together with a
	// flag reporting presence, and returns a replacement value plus whether
	// the replacement should be written. lookUp reports whether the key was
	// already present.
	lookUp(key K, fn func(existing V, found bool) (V, bool)) bool

	entries() []Entry[K, V]
	size() int
	clear()
}

// Hash is a generalized key-value container with pluggable equality.
//
// New builds a map-backed Hash with O(1) lookups for comparable keys.
// NewFunc builds a Hash for arbitrary keys matched by a supplied equality
// function; lookups scan existing entries linearly, an O(n) cost that is a
// documented property of custom-equality containers rather than something to
// silently optimize away.
type Hash[K, V any] struct {
	s strategy[K, V]
}

// New creates a Hash for comparable keys matched by native equality.
func New[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{s: &bucketStrategy[K, V]{buckets: make(map[K]V)}}
}

// NewFunc creates a Hash whose keys are matched by the supplied equality
// function.
func NewFunc[K, V any](equal func(a, b K) bool) *Hash[K, V] {
	return &Hash[K, V]{s: &scanStrategy[K, V]{equal: equal}}
}

// LookUp invokes fn with the value currently bound to key (or the zero value
// if absent) and a presence flag. If fn returns write=true, its returned
// value is bound to the key, inserting or overwriting as needed. LookUp
// reports whether the key was present before the call.
func (h *Hash[K, V]) LookUp(key K, fn func(existing V, found bool) (V, bool)) bool {
	return h.s.lookUp(key, fn)
}

// Get returns the value bound to key. The second result distinguishes a
// missing key from a stored zero value; callers must never conflate the two.
func (h *Hash[K, V]) Get(key K) (V, bool) {
	var value V
	found := h.s.lookUp(key, func(existing V, ok bool) (V, bool) {
		if ok {
			value = existing
		}
		return existing, false
	})
	return value, found
}

// Put binds value to key. When the key is absent the binding is always
// inserted; when present it is replaced only if overwrite is true. Put
// reports whether a write occurred.
func (h *Hash[K, V]) Put(key K, value V, overwrite bool) bool {
	wrote := false
	h.s.lookUp(key, func(existing V, found bool) (V, bool) {
		if found && !overwrite {
			return existing, false
		}
		wrote = true
		return value, true
	})
	return wrote
}

// Contains reports whether key has a binding.
func (h *Hash[K, V]) Contains(key K) bool {
	return h.s.lookUp(key, func(existing V, _ bool) (V, bool) {
		return existing, false
	})
}

// Entries returns all bindings. No cross-bucket ordering is guaranteed.
func (h *Hash[K, V]) Entries() []Entry[K, V] {
	return h.s.entries()
}

// Len returns the number of bindings.
func (h *Hash[K, V]) Len() int {
	return h.s.size()
}

// Clear removes all bindings. The equality rule is retained.
func (h *Hash[K, V]) Clear() {
	h.s.clear()
}

// bucketStrategy stores bindings in a native map.
type bucketStrategy[K comparable, V any] struct {
	buckets map[K]V
}

func (b *bucketStrategy[K, V]) lookUp(key K, fn func(V, bool) (V, bool)) bool {
	existing, found := b.buckets[key]
	if replacement, write := fn(existing, found); write {
		b.buckets[key] = replacement
	}
	return found
}

func (b *bucketStrategy[K, V]) entries() []Entry[K, V] {
	result := make([]Entry[K, V], 0, len(b.buckets))
	for k, v := range b.buckets {
		result = append(result, Entry[K, V]{Key: k, Value: v})
	}
	return result
}

func (b *bucketStrategy[K, V]) size() int {
	return len(b.buckets)
}

func (b *bucketStrategy[K, V]) clear() {
	b.buckets = make(map[K]V)
}

// scanStrategy stores bindings in insertion order and matches keys with the
// supplied equality function.
type scanStrategy[K, V any] struct {
	equal    func(a, b K) bool
	bindings []Entry[K, V]
}

func (s *scanStrategy[K, V]) lookUp(key K, fn func(V, bool) (V, bool)) bool {
	for i := range s.bindings {
		if s.equal(s.bindings[i].Key, key) {
			if replacement, write := fn(s.bindings[i].Value, true); write {
				s.bindings[i].Value = replacement
			}
			return true
		}
	}

	var zero V
	if replacement, write := fn(zero, false); write {
		s.bindings = append(s.bindings, Entry[K, V]{Key: key, Value: replacement})
	}
	return false
}

func (s *scanStrategy[K, V]) entries() []Entry[K, V] {
	result := make([]Entry[K, V], len(s.bindings))
	copy(result, s.bindings)
	return result
}

func (s *scanStrategy[K, V]) size() int {
	return len(s.bindings)
}

func (s *scanStrategy[K, V]) clear() {
	s.bindings = nil
}
