package metric

import "github.com/prometheus/client_golang/prometheus"

// Registry owns a dedicated Prometheus registry and the codec/
// SpikeBuffer counters registered against it. There is no dynamic
// per-service registration here because this layer has exactly one
// caller-facing surface (codec and SpikeBuffer), not an arbitrary set
// of components.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
}

// NewRegistry creates a Registry with its counters registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		Metrics:            NewMetrics(),
	}
	r.prometheusRegistry.MustRegister(
		r.Metrics.EventsEncoded,
		r.Metrics.EventsDecoded,
		r.Metrics.MalformedRejections,
		r.Metrics.SpikeBufferReuses,
	)
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry so a
// caller's own transport/HTTP layer can expose it however it likes.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}
