package obsmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSinkRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewSink("respkv_client_test", reg)
	require.NotNil(t, sink.Metrics())
	// A CounterVec with no children is left out of Gather's output, so
	// create one outcome series before counting families.
	sink.Metrics().Outcomes.WithLabelValues("value")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}

func TestNilSinkMetricsIsNil(t *testing.T) {
	var sink *Sink
	assert.Nil(t, sink.Metrics())
}
