package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the codec/SpikeBuffer counters this layer exposes.
// Labels are kept low-cardinality: event kind (ttl/text/binary/spike)
// and, for rejections, a short reason string derived from the error
// sentinel that caused the rejection.
type Metrics struct {
	EventsEncoded       *prometheus.CounterVec
	EventsDecoded       *prometheus.CounterVec
	MalformedRejections *prometheus.CounterVec
	SpikeBufferReuses   prometheus.Counter
}

// NewMetrics constructs the counter vectors, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		EventsEncoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ephyscore",
				Subsystem: "codec",
				Name:      "events_encoded_total",
				Help:      "Total number of events serialized, by event kind.",
			},
			[]string{"kind"},
		),
		EventsDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ephyscore",
				Subsystem: "codec",
				Name:      "events_decoded_total",
				Help:      "Total number of events deserialized, by event kind.",
			},
			[]string{"kind"},
		),
		MalformedRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ephyscore",
				Subsystem: "codec",
				Name:      "malformed_rejections_total",
				Help:      "Total number of messages rejected as malformed, by reason.",
			},
			[]string{"reason"},
		),
		SpikeBufferReuses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ephyscore",
				Subsystem: "spikebuffer",
				Name:      "reuse_attempts_total",
				Help:      "Total number of attempts to consume an already-consumed SpikeBuffer.",
			},
		),
	}
}

// RecordEncoded increments the encoded counter for the given event kind.
// A nil *Metrics is a no-op, so callers can hold an optional Metrics
// field without a separate enabled check at every call site.
func (m *Metrics) RecordEncoded(kind string) {
	if m == nil {
		return
	}
	m.EventsEncoded.WithLabelValues(kind).Inc()
}

// RecordDecoded increments the decoded counter for the given event kind.
func (m *Metrics) RecordDecoded(kind string) {
	if m == nil {
		return
	}
	m.EventsDecoded.WithLabelValues(kind).Inc()
}

// RecordMalformed increments the malformed-rejection counter for reason.
func (m *Metrics) RecordMalformed(reason string) {
	if m == nil {
		return
	}
	m.MalformedRejections.WithLabelValues(reason).Inc()
}

// RecordSpikeBufferReuse increments the SpikeBuffer reuse-attempt counter.
func (m *Metrics) RecordSpikeBufferReuse() {
	if m == nil {
		return
	}
	m.SpikeBufferReuses.Inc()
}
