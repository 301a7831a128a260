package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	getAvailableSlots "github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
)

const (
	msgInvalidLimit        = "некорректный параметр limit"
	msgInvalidParams       = "некорректные параметры запроса"
	msgCalendarUnavailable = "календарь недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available
// Query params: day (optional), limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getAvailableSlots.Request{Day: query.Get("day")}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			h.logger.Warn("GET /slots/available - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /slots/available - Calendar unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /slots/available - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - Slots retrieved successfully: slots_count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
