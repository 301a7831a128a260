package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/internal/api"
	"github.com/Saikabilane/AutoSense/internal/app"
	"github.com/Saikabilane/AutoSense/internal/config"
	calendarStore "github.com/Saikabilane/AutoSense/internal/infra/storage/calendar"
	"github.com/Saikabilane/AutoSense/pkg/logger"
	"github.com/Saikabilane/AutoSense/pkg/metrics"
)

func newTestRouter(t *testing.T, withMetrics bool) http.Handler {
	t.Helper()

	cfg, err := config.Parse("")
	require.NoError(t, err)

	m, err := metrics.NewWithRegistry("autosense-test", prometheus.NewRegistry())
	require.NoError(t, err)

	store := calendarStore.NewFileStore(filepath.Join(t.TempDir(), "calendar.csv"))
	a := app.New(cfg, store, nil, m, logger.Nop())

	opts := api.Options{MetricsPath: "/metrics"}
	if withMetrics {
		opts.Metrics = m
	}
	return api.NewRouter(a.Handlers(), opts, logger.Nop())
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_BookingFlow(t *testing.T) {
	r := newTestRouter(t, false)

	// Календарь еще не создан
	rec := do(t, r, http.MethodGet, "/api/v1/slots/available", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/v1/calendar", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var generated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	assert.EqualValues(t, 63, generated["totalSlots"])

	rec = do(t, r, http.MethodGet, "/api/v1/slots/available?limit=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var available struct {
		Descriptors []string `json:"descriptors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	assert.Len(t, available.Descriptors, 3)

	rec = do(t, r, http.MethodPost, "/api/v1/slots/1/bookings", map[string]string{
		"vehicleId":   "KA01AB1234",
		"vehicleType": "Car",
		"serviceType": "Brake Check",
		"riskLevel":   "High",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/api/v1/slots/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var slot struct {
		Used      int    `json:"used"`
		VehicleID string `json:"vehicleId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slot))
	assert.Equal(t, 1, slot.Used)
	assert.Equal(t, "KA01AB1234", slot.VehicleID)

	rec = do(t, r, http.MethodGet, "/api/v1/vehicles/KA01AB1234/bookings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/vehicles/UNKNOWN/bookings", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/v1/slots/9999/bookings", map[string]string{"vehicleId": "V"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	r := newTestRouter(t, false)

	rec := do(t, r, http.MethodGet, "/api/v1/calendar", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(t, false)

	rec := do(t, r, http.MethodGet, "/api/v1/companies/1/config", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, true)

	rec := do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RangeBookingFollowsGeneratedGranularity(t *testing.T) {
	r := newTestRouter(t, false)

	rec := do(t, r, http.MethodPost, "/api/v1/calendar", map[string]int{"slotDurationMinutes": 30})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, "/api/v1/bookings/range", map[string]interface{}{
		"startIndex":  0,
		"vehicleId":   "KA05EC0120",
		"vehicleType": "Car",
		"serviceType": "Engine Check",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booked struct {
		EndSlotID int64 `json:"endSlotId"`
		Slots     []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booked))
	require.Len(t, booked.Slots, 4)
	assert.Equal(t, int64(4), booked.EndSlotID)
	assert.Equal(t, "10:30", booked.Slots[3].Time)
}
