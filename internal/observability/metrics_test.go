package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbtestutil "github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

func TestObserveAPI(t *testing.T) {
	m := New()
	m.ObserveAPI("get", "/api/careers", "200", 12*time.Millisecond)
	m.ObserveAPI("GET", "/api/careers", "200", 8*time.Millisecond)
	m.ObserveAPI("", "", "", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/careers", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("UNKNOWN", "unknown", "0")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.apiLatency))
}

func TestAuthEventsAndInflight(t *testing.T) {
	m := New()
	m.IncAuthEvent("login")
	m.IncAuthEvent("login")
	m.IncAuthEvent("")
	m.ApiInflightInc()
	m.ApiInflightInc()
	m.ApiInflightDec()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.authEvents.WithLabelValues("login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authEvents.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiInflight))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAPI("GET", "/x", "200", time.Millisecond)
		m.IncAuthEvent("login")
		m.ApiInflightInc()
		m.ApiInflightDec()
		m.RegisterDBStats(nil, nil, "db")
		m.StartRedisCollector(t.Context(), nil, nil)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesDBStats(t *testing.T) {
	m := New()
	m.RegisterDBStats(logger.NewNop(), dbtestutil.SQLite(t), "careerhub")
	m.IncAuthEvent("register")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "careerhub_auth_events_total")
	assert.Contains(t, string(body), `go_sql_open_connections{db_name="careerhub"}`)
}

func TestEnabled(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	assert.False(t, Enabled())
	t.Setenv("METRICS_ENABLED", "true")
	assert.True(t, Enabled())
}
