package triage_vehicle

import (
	"errors"
	"net/http"

	"github.com/Saikabilane/AutoSense/internal/api/handlers"
	triageVehicle "github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownDecision    = "неизвестное диагностическое решение"
	msgInvalidInput       = "некорректные данные автомобиля"
	msgSlotUnavailable    = "выбранный слот больше недоступен"
)

type Handler struct {
	useCase TriageVehicleUseCase
	logger  Logger
}

func NewHandler(useCase TriageVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/triage
// 201 если слот забронирован, иначе 200 с исходом сценария
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TriageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /triage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, triageVehicle.ErrUnknownDecision):
			h.logger.Warn("POST /triage - Unknown decision: vehicle_id=%s, decision=%q", req.VehicleID, req.Decision)
			handlers.RespondBadRequest(w, msgUnknownDecision)

		case errors.Is(err, triageVehicle.ErrInvalidInput):
			h.logger.Warn("POST /triage - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, triageVehicle.ErrSlotUnavailable):
			h.logger.Warn("POST /triage - Selected slot taken: vehicle_id=%s", req.VehicleID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /triage - Failed to triage vehicle: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Outcome == triageVehicle.OutcomeBooked {
		status = http.StatusCreated
	}

	h.logger.Info("POST /triage - Triage finished: vehicle_id=%s, outcome=%s", req.VehicleID, result.Outcome)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
