package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valentine_week/internal/config"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	pr := NewPrometheusRecorder(prom.NewRegistry())

	pr.IncProgressInitialized()
	pr.IncDayCompleted(1)
	pr.IncDayCompleted(1)
	pr.IncDayCompleted(8)
	pr.IncReplayEntered()
	pr.IncProgressReset()
	pr.IncReplaceConflict()
	pr.ObserveHTTPRequest(http.MethodGet, "/api/progress", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(pr.initialized))
	assert.Equal(t, 2.0, testutil.ToFloat64(pr.daysCompleted.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.daysCompleted.WithLabelValues("8")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.replayEntered))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.replaceConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.httpRequests.WithLabelValues("GET", "/api/progress", "200")))
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncDayCompleted(3)

	rr := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `valentine_week_days_completed_total{day="3"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncProgressInitialized()
		pr.IncDayCompleted(1)
		pr.IncReplayEntered()
		pr.IncProgressReset()
		pr.IncReplaceConflict()
		pr.ObserveHTTPRequest("GET", "/", 200, time.Second)
	})
}

func TestNew(t *testing.T) {
	_, isNoop := New(config.MetricsConfig{Enabled: false}).(NoopRecorder)
	assert.True(t, isNoop)

	_, isProm := New(config.MetricsConfig{Enabled: true}).(*PrometheusRecorder)
	assert.True(t, isProm)
}
