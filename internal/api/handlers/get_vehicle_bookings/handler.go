package get_vehicle_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	"github.com/Saikabilane/AutoSense/internal/service/calendar"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgNoBookings       = "у автомобиля нет бронирований"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]

	slots, err := h.service.GetVehicleBookings(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/bookings - Invalid vehicle ID: %q", vehicleID)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)

		case errors.Is(err, calendar.ErrNoBookings):
			h.logger.Info("GET /vehicles/{id}/bookings - No bookings: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNoBookings)

		default:
			h.logger.Error("GET /vehicles/{id}/bookings - Failed to get bookings: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/bookings - Bookings retrieved successfully: vehicle_id=%s, count=%d",
		vehicleID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
