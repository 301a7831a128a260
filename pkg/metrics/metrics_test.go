package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewWithRegistry("autosense", reg)
	require.NoError(t, err)

	m.RecordBooking("book_slot", ResultSuccess)
	m.RecordBooking("book_slot", ResultSuccess)
	m.RecordBooking("book_range", ResultRejected)
	m.RecordSeeded(18)
	m.SetAvailableSlots(45)
	m.ObserveHTTP("GET", "/api/v1/slots/available", 200, 15*time.Millisecond)
	m.RecordTriage("ENGINE ISSUE", "booked")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("book_slot", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("book_range", ResultRejected)))
	assert.Equal(t, 18.0, testutil.ToFloat64(m.seeded))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.availableSlots))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/slots/available", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.triage.WithLabelValues("ENGINE ISSUE", "booked")))
}

func TestMetrics_ReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewWithRegistry("autosense", reg)
	require.NoError(t, err)
	second, err := NewWithRegistry("autosense", reg)
	require.NoError(t, err)

	first.RecordSeeded(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(second.seeded))
}
