package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeOpsTotal   *prometheus.CounterVec
	storeOpDuration *prometheus.HistogramVec

	bookingsCreatedTotal prometheus.Counter
	bookingsDeletedTotal prometheus.Counter
	slotConflictsTotal   prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		storeOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kvstore_operations_total",
			Help: "Total number of key-value store operations",
		}, []string{"service", "driver", "operation", "status"}),

		storeOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kvstore_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"service", "driver", "operation"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		}),

		bookingsDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookings_deleted_total",
			Help: "Total number of bookings deleted",
		}),

		slotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "slot_conflicts_total",
			Help: "Total number of booking attempts rejected due to an occupied slot",
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveStoreOperation фиксирует операцию key-value хранилища
func (m *Metrics) ObserveStoreOperation(driver, operation, status string, duration time.Duration) {
	m.storeOpsTotal.WithLabelValues(m.serviceName, driver, operation, status).Inc()
	m.storeOpDuration.WithLabelValues(m.serviceName, driver, operation).Observe(duration.Seconds())
}

// IncBookingsCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingsCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncBookingsDeleted увеличивает счетчик удаленных бронирований
func (m *Metrics) IncBookingsDeleted() {
	m.bookingsDeletedTotal.Inc()
}

// IncSlotConflicts увеличивает счетчик конфликтов слотов
func (m *Metrics) IncSlotConflicts() {
	m.slotConflictsTotal.Inc()
}
