package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecords(t *testing.T) {
	p := NewPrometheus()

	p.IncAdjustments("up")
	p.IncAdjustments("up")
	p.IncAdjustments("down")
	p.SetCounters(3)
	p.ObserveWrite(time.Millisecond, nil)
	p.ObserveWrite(time.Millisecond, errors.New("disk full"))
	p.IncLoadFailures()

	assert.Equal(t, 2.0, testutil.ToFloat64(p.adjustments.WithLabelValues("up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.adjustments.WithLabelValues("down")))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.counters))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.writeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.loadFailures))
}

func TestHandlerServesMetrics(t *testing.T) {
	p := NewPrometheus()
	p.SetCounters(2)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tally_counters 2"))
}

func TestRegistriesAreIsolated(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheus()
		NewPrometheus()
	})
}
