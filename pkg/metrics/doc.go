/*
Package metrics provides Prometheus instrumentation for goseq query
execution.

A Registry bundles the counters goseq components emit: enumerator creations,
yielded items, resets and protocol errors, all labeled by sequence name. The
package-level DefaultRegistry registers against the Prometheus default
registerer at init time; NewRegistry builds an isolated registry for tests
or for applications that manage their own registerer.

Sequences are instrumented with query.WithMetrics:

	orders := query.WithMetrics(query.FromSlice(data), "orders")
	_ = orders.ToSlice() // increments enumerations and items

Expose the metrics with promhttp as usual:

	http.Handle("/metrics", promhttp.Handler())
*/
package metrics
