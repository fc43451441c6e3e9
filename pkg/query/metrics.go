package query

import (
	"github.com/vnykmshr/goseq/pkg/metrics"
)

// WithMetrics wraps a sequence with Prometheus instrumentation on the
// package default registry. Each enumerator created, element yielded and
// reset performed is counted under the given sequence name. The wrapper is
// transparent: laziness, ordering and reset semantics are unchanged.
func WithMetrics[T any](s Sequence[T], name string) Sequence[T] {
	return WithMetricsConfig(s, name, metrics.DefaultConfig())
}

// WithMetricsConfig is WithMetrics with an explicit metrics configuration.
// A disabled config returns the sequence unwrapped.
func WithMetricsConfig[T any](s Sequence[T], name string, config metrics.Config) Sequence[T] {
	if !config.Enabled {
		return s
	}

	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	return NewSequence(func() Enumerator[T] {
		registry.QueryEnumerations.WithLabelValues(name).Inc()
		return &metricsEnumerator[T]{
			parent:   s.Enumerator(),
			name:     name,
			registry: registry,
		}
	})
}

// metricsEnumerator forwards the parent cursor, counting traffic.
type metricsEnumerator[T any] struct {
	parent   Enumerator[T]
	name     string
	registry *metrics.Registry
}

func (e *metricsEnumerator[T]) MoveNext() bool {
	ok := e.parent.MoveNext()
	if ok {
		e.registry.QueryItems.WithLabelValues(e.name).Inc()
	}
	return ok
}

func (e *metricsEnumerator[T]) Current() (T, error) {
	v, err := e.parent.Current()
	if err != nil {
		e.registry.QueryErrors.WithLabelValues(e.name).Inc()
	}
	return v, err
}

func (e *metricsEnumerator[T]) Reset() {
	e.registry.QueryResets.WithLabelValues(e.name).Inc()
	e.parent.Reset()
}
