package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики Prometheus для отправки сообщений и HTTP API
type Metrics struct {
	sendAttempts     *prometheus.CounterVec
	deliveries       *prometheus.CounterVec
	deliveryDuration *prometheus.HistogramVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		sendAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "telegram_send_attempts_total",
			Help:        "Количество попыток sendMessage по результату",
			ConstLabels: labels,
		}, []string{"outcome"}),

		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "telegram_deliveries_total",
			Help:        "Количество вызовов отправки по итоговому статусу",
			ConstLabels: labels,
		}, []string{"status"}),

		deliveryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "telegram_delivery_duration_seconds",
			Help:        "Длительность отправки с учётом повторных попыток",
			ConstLabels: labels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"status"}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Количество HTTP запросов",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Длительность обработки HTTP запросов",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveSendAttempt учитывает одну попытку sendMessage
func (m *Metrics) ObserveSendAttempt(outcome string) {
	m.sendAttempts.WithLabelValues(outcome).Inc()
}

// ObserveDelivery учитывает итог отправки сообщения
func (m *Metrics) ObserveDelivery(status string, elapsed time.Duration) {
	m.deliveries.WithLabelValues(status).Inc()
	m.deliveryDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
