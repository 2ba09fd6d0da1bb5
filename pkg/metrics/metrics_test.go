package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Instrument(t *testing.T) {
	collector := NewCollector("business-copilot")

	handler := collector.Instrument("/v1/posts/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/posts/abc", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/posts/:id", "404")))
}

func TestCollector_Counters(t *testing.T) {
	collector := NewCollector("business_copilot")

	collector.ContentGenerated("post")
	collector.ContentGenerated("post")
	collector.AchievementAwarded("top_rated")
	collector.ReportGenerated()

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.contentGenerated.WithLabelValues("post")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.achievementsAwarded.WithLabelValues("top_rated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.reportsGenerated))
}

func TestCollector_NilIgnoraObservacoes(t *testing.T) {
	var collector *Collector

	assert.NotPanics(t, func() {
		collector.ContentGenerated("post")
		collector.AchievementAwarded("top_rated")
		collector.ReportGenerated()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	collector.Instrument("/x", next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
