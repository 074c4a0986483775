package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"playbracket/internal/metrics"
)

func TestServiceCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	svc := metrics.NewService(registry)

	svc.IncMatchesRecorded()
	svc.IncMatchesRecorded()
	svc.IncValidationFailures()
	svc.IncRankingsComputed()
	svc.IncNotifSent()
	svc.IncNotifFailed()
	svc.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.MatchesRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.ValidationFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RankingsComputed))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.NotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.NotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	svc := metrics.NewService(registry)
	svc.IncMatchesRecorded()

	handler := metrics.NewMetricsHandler(registry)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "playbracket_matches_recorded_total 1")
}
