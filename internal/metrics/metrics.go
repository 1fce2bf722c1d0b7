// metrics описывает Prometheus-коллекторы url-shortener.
//
// Все методы *Metrics безопасны для nil-получателя: сервис и middleware
// могут работать без метрик (например, в unit-тестах).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "url_shortener"

// Результаты операций для лейбла result.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultExpired      = "expired"
	ResultInvalid      = "invalid"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)

// Metrics агрегирует коллекторы сервиса.
type Metrics struct {
	urlsCreated  prometheus.Counter
	resolves     *prometheus.CounterVec
	logins       *prometheus.CounterVec
	urls         *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в reg и возвращает их.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		urlsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "urls_created_total",
			Help:      "Number of short URLs created.",
		}),
		resolves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "url_resolves_total",
			Help:      "Number of short code resolutions by result.",
		}, []string{"result"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Number of authentication attempts by result.",
		}, []string{"result"}),
		urls: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "urls",
			Help:      "Stored short URLs by derived state.",
		}, []string{"state"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// URLCreated учитывает созданную ссылку.
func (m *Metrics) URLCreated() {
	if m == nil {
		return
	}
	m.urlsCreated.Inc()
}

// Resolve учитывает попытку разрешения кода.
func (m *Metrics) Resolve(result string) {
	if m == nil {
		return
	}
	m.resolves.WithLabelValues(result).Inc()
}

// Login учитывает попытку аутентификации.
func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// SetURLCounts публикует число активных и истёкших ссылок.
func (m *Metrics) SetURLCounts(active, expired int64) {
	if m == nil {
		return
	}
	m.urls.WithLabelValues("active").Set(float64(active))
	m.urls.WithLabelValues("expired").Set(float64(expired))
}

// HTTPRequest учитывает обработанный HTTP-запрос.
func (m *Metrics) HTTPRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}
