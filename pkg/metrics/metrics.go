package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus-метрик сервиса.
// Все метрики регистрируются в собственном реестре, чтобы в тестах можно было создавать несколько экземпляров.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpen          prometheus.Gauge
	dbInUse         prometheus.Gauge
	dbIdle          prometheus.Gauge

	bookingsCreated         *prometheus.CounterVec
	recommendationsDegraded prometheus.Counter
	recommendedProducts     prometheus.Histogram
}

// New создает и регистрирует метрики для сервиса serviceName
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of created bookings",
			ConstLabels: labels,
		}, []string{"payment_method"}),
		recommendationsDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "recommendations_degraded_total",
			Help:        "Number of recommendation calls that fell back to an empty result",
			ConstLabels: labels,
		}),
		recommendedProducts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "recommended_products",
			Help:        "Number of products returned per recommendation call",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 3, 4},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbOpen,
		m.dbInUse,
		m.dbIdle,
		m.bookingsCreated,
		m.recommendationsDegraded,
		m.recommendedProducts,
	)

	return m
}

// Handler возвращает HTTP-обработчик для эндпоинта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbOpen.Set(float64(open))
	m.dbInUse.Set(float64(inUse))
	m.dbIdle.Set(float64(idle))
}

func (m *Metrics) IncBookingsCreated(paymentMethod string) {
	m.bookingsCreated.WithLabelValues(paymentMethod).Inc()
}

func (m *Metrics) IncRecommendationsDegraded() {
	m.recommendationsDegraded.Inc()
}

func (m *Metrics) ObserveRecommendedProducts(count int) {
	m.recommendedProducts.Observe(float64(count))
}

// Noop реализация с тем же набором методов, используется при выключенных метриках
type Noop struct{}

func (Noop) ObserveHTTPRequest(string, string, int, time.Duration) {}
func (Noop) ObserveDBQuery(string, time.Duration)                  {}
func (Noop) SetDBPoolStats(int, int, int)                          {}
func (Noop) IncBookingsCreated(string)                             {}
func (Noop) IncRecommendationsDegraded()                           {}
func (Noop) ObserveRecommendedProducts(int)                        {}
