// SPDX-License-Identifier: MIT

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/metrics"
)

func TestCollector_RunLifecycle(t *testing.T) {
	c := metrics.NewCollector("algoviz")

	c.RunStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ActiveRuns))
	c.Checkpoint("Dijkstra")
	c.Checkpoint("Dijkstra")
	c.RunFinished("Dijkstra", metrics.OutcomeCompleted, 2*time.Second)

	assert.Equal(t, 0.0, testutil.ToFloat64(c.ActiveRuns))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Checkpoints.WithLabelValues("Dijkstra")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues("Dijkstra", metrics.OutcomeCompleted)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.RunDuration))
}

func TestCollector_Independent(t *testing.T) {
	a := metrics.NewCollector("algoviz")
	b := metrics.NewCollector("algoviz")
	a.Checkpoint("Prim")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.Checkpoints.WithLabelValues("Prim")))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.RunStarted()
		c.Checkpoint("x")
		c.RunFinished("x", metrics.OutcomeFailed, time.Second)
		c.ObserveHTTP("GET", "/", "200", time.Millisecond)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector("algoviz")
	c.ObserveHTTP(http.MethodGet, "/trace", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `algoviz_http_requests_total{method="GET",route="/trace",status="200"} 1`))
}
