package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the optional prometheus instrumentation an Await call
// records: end-to-end latency and an outcome counter keyed by one of
// "value", "protocol_error", "connection_error", "conversion_error".
// Grounded on packetd-packetd's pairing of a protocol decoder with
// prometheus/client_golang metrics (its processor/roundtripstometrics
// package takes the same "observe every decode" shape, not copied
// wholesale here).
type Metrics struct {
	Latency  prometheus.Histogram
	Outcomes *prometheus.CounterVec
}

// NewMetrics builds a Metrics set under namespace and, if reg is
// non-nil, registers it there. Callers sharing a registry across several
// Pipelines should build the collectors once and pass the same Metrics
// to each Pipeline instead of calling NewMetrics per pipeline.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "await_latency_seconds",
		Help:      "Latency of Pipeline Await calls, from encode to decoded result.",
		Buckets:   prometheus.DefBuckets,
	})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "await_outcomes_total",
		Help:      "Count of Pipeline Await outcomes by kind.",
	}, []string{"outcome"})
	if reg != nil {
		reg.MustRegister(latency, outcomes)
	}
	return &Metrics{Latency: latency, Outcomes: outcomes}
}
