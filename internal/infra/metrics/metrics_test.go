package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acp/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveReport(t *testing.T) {
	t.Parallel()

	m := New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "test"}})

	m.ObserveReport("api", []int{76, 100, 34}, 20*time.Millisecond)
	m.ObserveReport("batch", []int{50}, time.Millisecond)
	m.ObserveProduct(90)

	assert.InDelta(t, 1, testutil.ToFloat64(m.reports.WithLabelValues("api")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reports.WithLabelValues("batch")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.productsScored), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.productScore))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New(&config.Config{})
	m.ObserveProduct(80)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "acp_compliance_products_scored_total 1")
	assert.Contains(t, body, "acp_compliance_product_score_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_ObserveReportEvent(t *testing.T) {
	t.Parallel()

	m := New(&config.Config{})

	m.ObserveReportEvent("api", false)
	m.ObserveReportEvent("api", true)
	m.ObserveReportEvent("batch", true)

	assert.InDelta(t, 2, testutil.ToFloat64(m.eventsReceived.WithLabelValues("api")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsReceived.WithLabelValues("batch")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.regressions), 0)
}
