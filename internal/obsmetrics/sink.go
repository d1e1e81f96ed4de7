// Package obsmetrics is the metrics collaborator a Client wires into
// every Pipeline it opens: a shared Sink holds one set of prometheus
// collectors under a single namespace/registry, so a process running
// several Clients does not register duplicate collector families.
// Grounded on packetd-packetd's general practice of pairing a protocol
// decoder with github.com/prometheus/client_golang collectors.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/respkv/client/pipeline"
)

// Sink owns the prometheus collectors shared by every Pipeline a single
// Client (or pool of Clients) opens.
type Sink struct {
	metrics *pipeline.Metrics
}

// NewSink builds and, if reg is non-nil, registers the collectors under
// namespace. Pass the same Sink to every Client sharing a process so
// their Pipelines report into one set of series.
func NewSink(namespace string, reg prometheus.Registerer) *Sink {
	return &Sink{metrics: pipeline.NewMetrics(namespace, reg)}
}

// Metrics returns the pipeline.Metrics this Sink hands to each Pipeline
// it instruments.
func (s *Sink) Metrics() *pipeline.Metrics {
	if s == nil {
		return nil
	}
	return s.metrics
}
