// Package metric instruments the codec and SpikeBuffer handoff with
// Prometheus counters. The transport carrying serialized bytes is
// treated as opaque, so this package stops at producing a
// *prometheus.Registry a caller can expose however its own transport
// layer sees fit; it never starts an HTTP listener itself.
//
// Typical use:
//
//	reg := metric.NewRegistry()
//	reg.Metrics.EventsEncoded.WithLabelValues("ttl").Inc()
//	reg.Metrics.MalformedRejections.WithLabelValues("bad_base_tag").Inc()
package metric
