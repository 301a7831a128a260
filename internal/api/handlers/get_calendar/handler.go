package get_calendar

import (
	"errors"
	"net/http"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	"github.com/Saikabilane/AutoSense/internal/service/calendar"
	"github.com/Saikabilane/AutoSense/internal/service/calendar/models"
)

const (
	msgInvalidFilter = "некорректный фильтр, status должен быть FREE или BOOKED"
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

// Handle GET /api/v1/calendar
// Query params: status (optional), day (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetCalendarRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if day := query.Get("day"); day != "" {
		req.Day = &day
	}

	result, err := h.service.GetCalendar(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /calendar - Failed to get calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar retrieved successfully: slots_count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
