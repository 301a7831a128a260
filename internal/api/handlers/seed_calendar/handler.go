package seed_calendar

import (
	"errors"
	"net/http"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	seedCalendar "github.com/Saikabilane/AutoSense/internal/usecase/seed_calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры заполнения"
)

type Handler struct {
	useCase      SeedCalendarUseCase
	defaultRatio float64
	logger       Logger
}

func NewHandler(useCase SeedCalendarUseCase, defaultRatio float64, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		defaultRatio: defaultRatio,
		logger:       logger,
	}
}

// Handle POST /api/v1/calendar/seed
// Недостижимая цель не является ошибкой: ответ 200 с exhausted=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/seed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(h.defaultRatio))
	if err != nil {
		switch {
		case errors.Is(err, seedCalendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/seed - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calendar/seed - Failed to seed calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/seed - Seeded: booked=%d, target=%d, exhausted=%t",
		result.Booked, result.Target, result.Exhausted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
