package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goseq components.
type Registry struct {
	// Query execution metrics
	QueryEnumerations *prometheus.CounterVec
	QueryItems        *prometheus.CounterVec
	QueryResets       *prometheus.CounterVec
	QueryErrors       *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by goseq components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		QueryEnumerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "query",
				Name:      "enumerations_total",
				Help:      "Total number of enumerators created for a sequence",
			},
			[]string{"sequence_name"},
		),

		QueryItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "query",
				Name:      "items_total",
				Help:      "Total number of elements yielded by a sequence",
			},
			[]string{"sequence_name"},
		),

		QueryResets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "query",
				Name:      "resets_total",
				Help:      "Total number of enumerator resets",
			},
			[]string{"sequence_name"},
		),

		QueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "query",
				Name:      "errors_total",
				Help:      "Total number of enumerator protocol errors",
			},
			[]string{"sequence_name"},
		),
	}
}
