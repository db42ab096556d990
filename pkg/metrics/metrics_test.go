package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("laundry-test")

	m.IncBookingsCreated("cod")
	m.IncBookingsCreated("cod")
	m.IncBookingsCreated("online")
	m.IncRecommendationsDegraded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("cod")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("online")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendationsDegraded))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("laundry-test")
	m.ObserveHTTPRequest(http.MethodGet, "/api/bookings", http.StatusOK, 15*time.Millisecond)
	m.SetDBPoolStats(3, 1, 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/bookings",service="laundry-test",status="200"} 1`)
	assert.Contains(t, body, `db_connections_open{service="laundry-test"} 3`)
}
