package triage_vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Saikabilane/AutoSense/internal/integrations/callservice"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_slot"
	"github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
)

// OperationTriage метка операции бронирования в метриках
const OperationTriage = "triage"

// UseCase use case сценария триажа: решение, доступность, звонок, бронирование
type UseCase struct {
	slots      SlotLister
	booker     SlotBooker
	callClient CallServiceClient
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slots SlotLister,
	booker SlotBooker,
	callClient CallServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:      slots,
		booker:     booker,
		callClient: callClient,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет сценарий триажа
// Бронирование происходит только при однозначно распознанном выборе клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TriageVehicle: vehicle=%s, decision=%q, risk=%s", req.VehicleID, req.Decision, req.RiskLevel)

	// 1. Валидация входных данных
	decision, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("TriageVehicle: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{Decision: string(decision)}

	// 2. Решение без обслуживания
	if !decision.RequiresService() {
		uc.logger.Info("TriageVehicle: vehicle=%s needs no service", req.VehicleID)
		return uc.finish(resp, OutcomeNoService), nil
	}

	// 3. Доступные слоты
	available, err := uc.slots.Execute(ctx, &get_available_slots.Request{})
	if err != nil {
		uc.logger.Error("TriageVehicle: failed to get available slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
	}
	if len(available.Slots) == 0 {
		uc.logger.Warn("TriageVehicle: no slots available for vehicle=%s", req.VehicleID)
		return uc.finish(resp, OutcomeNoSlots), nil
	}

	// 4. Звонок клиенту
	vehicle := req.VehicleModel
	if vehicle == "" {
		vehicle = req.VehicleType
	}
	offered, descriptors := distinctOffer(available.Slots)
	resp.OfferedSlots = descriptors
	resp.Script = buildScript(req.CustomerName, vehicle, decision, descriptors)

	call, err := uc.callClient.PlaceCallWithGracefulDegradation(ctx, callservice.CallRequest{
		RequestID: uuid.NewString(),
		Script:    resp.Script,
		Slots:     descriptors,
		Number:    strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		uc.logger.Warn("TriageVehicle: call for vehicle=%s ended without selection: %v", req.VehicleID, err)
		return uc.finish(resp, OutcomeNoSelection), nil
	}
	resp.Selection = call.Selection

	// 5. Сопоставление ответа со слотом
	chosen, ok := resolveSelection(call.Selection, offered)
	if !ok {
		uc.logger.Warn("TriageVehicle: selection %q does not match any offered slot", call.Selection)
		return uc.finish(resp, OutcomeNoSelection), nil
	}

	// 6. Бронирование тем же путем, что и ручное
	booked, err := uc.booker.Execute(ctx, &book_slot.Request{
		SlotID:      chosen.ID,
		VehicleID:   req.VehicleID,
		VehicleType: req.VehicleType,
		ServiceType: string(decision),
		RiskLevel:   req.RiskLevel,
		Operation:   OperationTriage,
	})
	if err != nil {
		if errors.Is(err, book_slot.ErrSlotFull) || errors.Is(err, book_slot.ErrSlotNotFound) {
			uc.logger.Warn("TriageVehicle: selected slot id=%d was taken: %v", chosen.ID, err)
			uc.metrics.RecordTriage(string(decision), string(OutcomeSlotTaken))
			return nil, fmt.Errorf("%w: id=%d", ErrSlotUnavailable, chosen.ID)
		}
		uc.logger.Error("TriageVehicle: failed to book slot id=%d: %v", chosen.ID, err)
		return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
	}

	resp.SlotID = booked.SlotID
	resp.Confirmation = booked.Confirmation

	return uc.finish(resp, OutcomeBooked), nil
}

func (uc *UseCase) finish(resp *Response, outcome Outcome) *Response {
	resp.Outcome = outcome
	uc.metrics.RecordTriage(resp.Decision, string(outcome))
	uc.logger.Info("TriageVehicle: outcome=%s", outcome)
	return resp
}
