// Package app собирает use cases, сервисы и обработчики поверх хранилища календаря
package app

import (
	"time"

	"github.com/Saikabilane/AutoSense/internal/api"
	bookRangeHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/book_range"
	bookSlotHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/book_slot"
	generateCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/generate_calendar"
	getAvailableSlotsHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_calendar"
	getSlotHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_slot"
	getVehicleBookingsHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/get_vehicle_bookings"
	seedCalendarHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/seed_calendar"
	triageVehicleHandler "github.com/Saikabilane/AutoSense/internal/api/handlers/triage_vehicle"
	"github.com/Saikabilane/AutoSense/internal/config"
	"github.com/Saikabilane/AutoSense/internal/integrations/callservice"
	calendarService "github.com/Saikabilane/AutoSense/internal/service/calendar"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_range"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_slot"
	"github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
	"github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
	"github.com/Saikabilane/AutoSense/internal/usecase/seed_calendar"
	"github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
	"github.com/Saikabilane/AutoSense/pkg/logger"
	"github.com/Saikabilane/AutoSense/pkg/metrics"
	"github.com/Saikabilane/AutoSense/pkg/txmanager"
)

// App готовые к использованию компоненты сервиса
type App struct {
	Config    *config.Config
	TxManager *txmanager.TransactionManager
	Calendar  *calendarService.Service

	GenerateCalendar  *generate_calendar.UseCase
	GetAvailableSlots *get_available_slots.UseCase
	BookSlot          *book_slot.UseCase
	BookRange         *book_range.UseCase
	SeedCalendar      *seed_calendar.UseCase
	TriageVehicle     *triage_vehicle.UseCase

	log *logger.Logger
}

// New собирает компоненты; calls может быть nil, тогда используется клиент из конфигурации
func New(cfg *config.Config, store txmanager.Store, calls triage_vehicle.CallServiceClient, m *metrics.Metrics, log *logger.Logger) *App {
	shape := cfg.Calendar.CalendarShape()
	tx := txmanager.NewTransactionManager(store)

	if calls == nil {
		calls = callservice.NewClient(
			cfg.CallService.URL,
			time.Duration(cfg.CallService.Timeout)*time.Second,
			log.With("callservice"),
		)
	}

	a := &App{
		Config:    cfg,
		TxManager: tx,
		Calendar:  calendarService.NewService(tx, log.With("calendar")),
		log:       log,
	}
	a.GenerateCalendar = generate_calendar.NewUseCase(tx, shape, m, log.With("generate_calendar"))
	a.GetAvailableSlots = get_available_slots.NewUseCase(tx, m, log.With("get_available_slots"))
	a.BookSlot = book_slot.NewUseCase(tx, m, log.With("book_slot"))
	a.BookRange = book_range.NewUseCase(tx, shape.SlotDurationMinutes, m, log.With("book_range"))
	a.SeedCalendar = seed_calendar.NewUseCase(tx, shape.SlotDurationMinutes, cfg.Calendar.SeedMaxAttempts, m, log.With("seed_calendar"))
	a.TriageVehicle = triage_vehicle.NewUseCase(a.GetAvailableSlots, a.BookSlot, calls, m, log.With("triage"))

	return a
}

// Handlers создает HTTP обработчики поверх use cases
func (a *App) Handlers() api.Handlers {
	return api.Handlers{
		GenerateCalendar:   generateCalendarHandler.NewHandler(a.GenerateCalendar, a.log),
		GetCalendar:        getCalendarHandler.NewHandler(a.Calendar, a.log),
		SeedCalendar:       seedCalendarHandler.NewHandler(a.SeedCalendar, a.Config.Calendar.SeedRatio, a.log),
		GetAvailableSlots:  getAvailableSlotsHandler.NewHandler(a.GetAvailableSlots, a.log),
		GetSlot:            getSlotHandler.NewHandler(a.Calendar, a.log),
		BookSlot:           bookSlotHandler.NewHandler(a.BookSlot, a.log),
		BookRange:          bookRangeHandler.NewHandler(a.BookRange, a.log),
		TriageVehicle:      triageVehicleHandler.NewHandler(a.TriageVehicle, a.log),
		GetVehicleBookings: getVehicleBookingsHandler.NewHandler(a.Calendar, a.log),
	}
}
