// Package api собирает HTTP маршруты сервиса
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookRangeHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/book_range"
	bookSlotHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/book_slot"
	generateCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/generate_calendar"
	getAvailableSlotsHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_calendar"
	getSlotHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_slot"
	getVehicleBookingsHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_vehicle_bookings"
	seedCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/seed_calendar"
	triageVehicleHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/triage_vehicle"
	"github.com/Saikabilane/AutoSense/internal/api/middleware"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handlers обработчики HTTP маршрутов
type Handlers struct {
	GenerateCalendar   *generateCalendarHandler.Handler
	GetCalendar        *getCalendarHandler.Handler
	SeedCalendar       *seedCalendarHandler.Handler
	GetAvailableSlots  *getAvailableSlotsHandler.Handler
	GetSlot            *getSlotHandler.Handler
	BookSlot           *bookSlotHandler.Handler
	BookRange          *bookRangeHandler.Handler
	TriageVehicle      *triageVehicleHandler.Handler
	GetVehicleBookings *getVehicleBookingsHandler.Handler
}

// Options параметры роутера
type Options struct {
	Metrics     middleware.HTTPMetrics // nil = метрики выключены
	MetricsPath string
}

// NewRouter создает роутер со всеми маршрутами /api/v1
func NewRouter(h Handlers, opts Options, log Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", opts.MetricsPath)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	api.HandleFunc("/calendar", h.GenerateCalendar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar", h.GetCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/seed", h.SeedCalendar.Handle).Methods(http.MethodPost)

	// --- Слоты ---
	// /slots/available регистрируется раньше /slots/{slotId}
	api.HandleFunc("/slots/available", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId:[0-9]+}", h.GetSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId:[0-9]+}/bookings", h.BookSlot.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings/range", h.BookRange.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}/bookings", h.GetVehicleBookings.Handle).Methods(http.MethodGet)

	// --- Триаж ---
	api.HandleFunc("/triage", h.TriageVehicle.Handle).Methods(http.MethodPost)

	return r
}
