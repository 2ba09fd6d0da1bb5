// Package metrics expõe as métricas Prometheus da API.
// Um *Collector nil é válido e ignora todas as observações.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	contentGenerated    *prometheus.CounterVec
	achievementsAwarded *prometheus.CounterVec
	reportsGenerated    prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	namespace = strings.ReplaceAll(namespace, "-", "_")

	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP",
		},
		[]string{"method", "endpoint", "status"},
	)

	c.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	c.contentGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_generated_total",
			Help:      "Conteúdos gerados por tipo",
		},
		[]string{"kind"},
	)

	c.achievementsAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_awarded_total",
			Help:      "Conquistas concedidas por tipo",
		},
		[]string{"type"},
	)

	c.reportsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monthly_reports_generated_total",
			Help:      "Relatórios mensais gerados",
		},
	)

	c.registry.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.contentGenerated,
		c.achievementsAwarded,
		c.reportsGenerated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Instrument mede as requisições de uma rota usando o padrão da rota como rótulo
func (c *Collector) Instrument(endpoint string, next http.Handler) http.Handler {
	if c == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(srw, r)

		c.httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(srw.statusCode)).Inc()
		c.httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

func (c *Collector) ContentGenerated(kind string) {
	if c == nil {
		return
	}
	c.contentGenerated.WithLabelValues(kind).Inc()
}

func (c *Collector) AchievementAwarded(achievementType string) {
	if c == nil {
		return
	}
	c.achievementsAwarded.WithLabelValues(achievementType).Inc()
}

func (c *Collector) ReportGenerated() {
	if c == nil {
		return
	}
	c.reportsGenerated.Inc()
}

// Handler publica o registro próprio do coletor
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
