/*
Package hash provides a generalized key-value container with pluggable
equality, used by the query package to back distinct, group-by and join
operators.

Two construction paths select the matching strategy at compile time:

	// Comparable keys, native equality, O(1) map-backed lookups.
	h := hash.New[string, int]()

	// Arbitrary keys, caller-supplied equality, O(n) linear-scan lookups.
	h := hash.NewFunc[[]byte, int](bytes.Equal)

Every operation is built on a single primitive, LookUp, which visits the
binding for a key and may atomically replace it:

	h.LookUp("a", func(existing int, found bool) (int, bool) {
		return existing + 1, true // write back an incremented value
	})

Get distinguishes a missing key from a stored zero value via its second
result. Entries returns all bindings with no cross-bucket ordering
guarantee. The equality rule of a Hash never changes after construction.

The linear-scan path is an intentional property, not a defect: hashing keys
behind a custom equality function would change equality semantics, so
lookups honor the supplied comparer even at O(n) per probe.
*/
package hash
