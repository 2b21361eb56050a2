package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_Registers(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.RecordHTTPRequest("GET", "/projects/", "200", 10*time.Millisecond)
	m.RecordStoreOperation("list", "ok", time.Millisecond)
	m.RecordProjectCreated(90, 150)

	families, err := registry.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 7)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordHTTPRequest("POST", "/projects/", "201", time.Millisecond)
	m.RecordHTTPRequest("POST", "/projects/", "201", time.Millisecond)
	m.RecordHTTPRequest("POST", "/projects/", "400", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/projects/", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/projects/", "400")))
}

func TestRecordStoreOperation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordStoreOperation("get", "not_found", time.Millisecond)
	m.RecordStoreOperation("get", "ok", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("get", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("get", "ok")))
}

func TestRecordProjectCreated(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordProjectCreated(90, 150)
	m.RecordProjectCreated(30, 25)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProjectsCreatedTotal))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.BilledMinutesTotal))
	assert.Equal(t, 175.0, testutil.ToFloat64(m.BilledValueTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
		m.RecordStoreOperation("list", "ok", time.Millisecond)
		m.RecordProjectCreated(1, 1)
	})
}
