/*
Package query provides deferred, composable query operations over sequences
of values.

A Sequence is an immutable description of a computation over elements;
nothing runs when operators are chained. Work happens when a consumer drives
an Enumerator obtained from the outermost operator, or calls a terminal
operation that does so internally.

Core Concepts:

  - Lazy: operators are O(1) to construct and consume no source elements
    until the first MoveNext of a traversal.
  - Immutable: operators return new sequences; existing ones never change.
  - Re-enumerable: every Sequence.Enumerator() call mints an independent
    cursor, so the same query can be evaluated repeatedly, observing the
    source's contents as of each traversal.
  - Pluggable semantics: operations that compare elements or keys accept a
    caller-supplied equality or ordering comparer through their ...Func
    variants; the plain variants use native equality or natural ordering.

Basic Usage:

	people := query.FromSlice(team)

	names := query.Select(
		people.Where(func(p Person) bool { return p.Age >= 18 }),
		func(p Person) string { return p.Name },
	)

	for _, name := range names.ToSlice() { // work happens here
		fmt.Println(name)
	}

Sequence Creation:

	query.FromSlice([]int{1, 2, 3})     // slice-backed
	query.Of("only")                    // single scalar
	query.Empty[int]()                  // no elements
	query.Range(0, 10)                  // 0..9
	query.Repeat("x", 3)                // x x x
	query.FromIndexable(provider)       // any Len/At collection
	query.Generate(fib)                 // generator function, may be unbounded
	query.FromChannel(ch)               // channel-backed, single traversal

Because Go methods cannot introduce type parameters, operators that change
the element type (Select, SelectMany, GroupBy, Join, Zip, OrderBy and
friends) are package-level functions taking the sequence first, while
operators preserving the element type (Where, Take, Concat, Distinct and
friends) are methods.

Ordering:

	query.ThenBy(
		query.OrderBy(people, func(p Person) string { return p.LastName }),
		func(p Person) string { return p.FirstName },
	)

ThenBy does not re-sort ordered output; the ordered sequence carries its
original source plus the accumulated key chain, and one stable sort runs on
the first traversal. Equal-key elements keep their original relative order.

Materializing operators (ordering, grouping, the join family, Reverse, the
set-membership filters) buffer the consumed portion of their source on the
first MoveNext. After Reset these buffers are replayed, not recomputed.
Distinct and the pure streaming operators return fully to their initial
state on Reset and recompute on the next traversal.

Failure model: protocol violations (Current before MoveNext or after
exhaustion) and structural violations in terminal operations (First on an
empty sequence, an ambiguous Single) return StateError values wrapping
errors.ErrInvalidState. Negative counts at construction and out-of-range
indexes return RangeError values wrapping errors.ErrOutOfRange. The
...OrDefault variants tolerate exactly one structural failure each and never
mask anything else.

A single enumerator must not be driven concurrently; independent enumerators
from the same sequence may be interleaved freely.
*/
package query
