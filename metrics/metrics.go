// Package metrics счетчики деградации прогноза и HTTP API для /metrics.
// Все методы безопасны для nil, поэтому компоненты работают и без метрик.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	providerFallbacks *prometheus.CounterVec
	providerLatency   prometheus.Histogram
	syntheticDays     prometheus.Counter
	advisoryFallbacks prometheus.Counter
	advisoryPublished *prometheus.CounterVec
}

// New регистрирует метрики в собственном реестре, чтобы несколько
// экземпляров (например, в тестах) не конфликтовали
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agro_http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agro_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		providerFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agro_weather_provider_fallbacks_total",
			Help: "Weather requests served fully synthetic, by reason.",
		}, []string{"reason"}),
		providerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "agro_weather_provider_duration_seconds",
			Help:    "Histogram of weather provider call durations.",
			Buckets: prometheus.DefBuckets,
		}),
		syntheticDays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agro_weather_synthetic_days_total",
			Help: "Total synthetic weather days generated.",
		}),
		advisoryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agro_advisory_fallbacks_total",
			Help: "Personalized advisories replaced with the generic list.",
		}),
		advisoryPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agro_advisory_batches_published_total",
			Help: "Advisory batches sent to the message bus, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.httpRequestsTotal,
		m.httpDuration,
		m.providerFallbacks,
		m.providerLatency,
		m.syntheticDays,
		m.advisoryFallbacks,
		m.advisoryPublished,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		duration := time.Since(start).Seconds()
		if m != nil {
			m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.httpDuration.WithLabelValues(route).Observe(duration)
		}
	})
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ProviderFallback весь ряд заменен синтетикой
func (m *Metrics) ProviderFallback(reason string) {
	if m == nil {
		return
	}
	m.providerFallbacks.WithLabelValues(reason).Inc()
}

func (m *Metrics) ProviderRequest(duration time.Duration) {
	if m == nil {
		return
	}
	m.providerLatency.Observe(duration.Seconds())
}

func (m *Metrics) SyntheticDays(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.syntheticDays.Add(float64(n))
}

func (m *Metrics) AdvisoryFallback() {
	if m == nil {
		return
	}
	m.advisoryFallbacks.Inc()
}

func (m *Metrics) AdvisoryPublished(success bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !success {
		result = "error"
	}
	m.advisoryPublished.WithLabelValues(result).Inc()
}
