package generate_calendar

import (
	"errors"
	"net/http"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	generateCalendar "github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректные параметры календаря"
)

type Handler struct {
	useCase GenerateCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GenerateCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar
// Пустое тело = параметры из конфигурации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateCalendarRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, generateCalendar.ErrInvalidConfig):
			h.logger.Warn("POST /calendar - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("POST /calendar - Failed to generate calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar - Calendar generated successfully: total_slots=%d", result.TotalSlots)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
