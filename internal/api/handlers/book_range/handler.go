package book_range

import (
	"errors"
	"net/http"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	bookRange "github.com/Saikabilane/AutoSense/internal/usecase/book_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingStartIndex  = "startIndex обязателен"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRangeUnavailable   = "непрерывный блок слотов недоступен"
)

type Handler struct {
	useCase BookRangeUseCase
	logger  Logger
}

func NewHandler(useCase BookRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/range
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/range - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.StartIndex == nil {
		h.logger.Warn("POST /bookings/range - Missing start index")
		handlers.RespondBadRequest(w, msgMissingStartIndex)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookRange.ErrInvalidInput):
			h.logger.Warn("POST /bookings/range - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookRange.ErrRangeUnavailable):
			h.logger.Warn("POST /bookings/range - Range unavailable: start_index=%d, vehicle_id=%s",
				*req.StartIndex, req.VehicleID)
			handlers.RespondConflict(w, msgRangeUnavailable)

		default:
			h.logger.Error("POST /bookings/range - Failed to book range: start_index=%d, error=%v", *req.StartIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/range - Range booked successfully: slots %d-%d, vehicle_id=%s",
		result.StartID, result.EndID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
