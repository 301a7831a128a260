// Package metrics Prometheus метрики сервиса
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты операций бронирования для метки result
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	bookings       *prometheus.CounterVec
	seeded         prometheus.Counter
	availableSlots prometheus.Gauge
	triage         *prometheus.CounterVec
}

// New регистрирует метрики в глобальном Prometheus registerer
func New(serviceName string) *Metrics {
	m, err := NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	return m
}

// NewWithRegistry регистрирует метрики в переданном registerer
// Уже зарегистрированные коллекторы переиспользуются
func NewWithRegistry(serviceName string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_bookings_total",
			Help:        "Booking attempts by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		seeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_seeded_bookings_total",
			Help:        "Synthetic booking events created by the seeder",
			ConstLabels: constLabels,
		}),
		availableSlots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "calendar_available_slots",
			Help:        "Number of slots that can absorb another booking",
			ConstLabels: constLabels,
		}),
		triage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "triage_outcomes_total",
			Help:        "Triage workflow outcomes",
			ConstLabels: constLabels,
		}, []string{"decision", "outcome"}),
	}

	var err error
	if m.httpRequests, err = register(reg, m.httpRequests); err != nil {
		return nil, err
	}
	if m.httpDuration, err = register(reg, m.httpDuration); err != nil {
		return nil, err
	}
	if m.bookings, err = register(reg, m.bookings); err != nil {
		return nil, err
	}
	if m.seeded, err = register(reg, m.seeded); err != nil {
		return nil, err
	}
	if m.availableSlots, err = register(reg, m.availableSlots); err != nil {
		return nil, err
	}
	if m.triage, err = register(reg, m.triage); err != nil {
		return nil, err
	}

	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveHTTP учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordBooking учитывает попытку бронирования
func (m *Metrics) RecordBooking(operation, result string) {
	m.bookings.WithLabelValues(operation, result).Inc()
}

// RecordSeeded учитывает синтетические бронирования
func (m *Metrics) RecordSeeded(n int) {
	m.seeded.Add(float64(n))
}

// SetAvailableSlots обновляет число доступных слотов
func (m *Metrics) SetAvailableSlots(n int) {
	m.availableSlots.Set(float64(n))
}

// RecordTriage учитывает исход сценария триажа
func (m *Metrics) RecordTriage(decision, outcome string) {
	m.triage.WithLabelValues(decision, outcome).Inc()
}
