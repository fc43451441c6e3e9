/*
Package goseq provides deferred, composable query operations over sequences
of values, with custom equality and ordering semantics pluggable per
operation.

Querying (pkg/query):
  - query: lazy Sequence/Enumerator core with filtering, projection,
    ordering, grouping, joins, set operators and terminal operations
  - query/hash: generalized key-value container with pluggable equality
  - query/redisseq: Redis lists as query sources

Shared infrastructure (pkg/common, pkg/metrics):
  - common/errors: sentinel errors and structured error types
  - common/validation: argument validation helpers
  - metrics: Prometheus instrumentation for query execution

Example usage:

	import "github.com/vnykmshr/goseq/pkg/query"

	people := query.FromSlice(team)
	adults := query.Select(
		people.Where(func(p Person) bool { return p.Age >= 18 }),
		func(p Person) string { return p.Name },
	)

	names := adults.ToSlice() // work happens here, not above
*/
package goseq
