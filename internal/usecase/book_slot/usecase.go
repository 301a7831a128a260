package book_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/pkg/metrics"
)

// OperationBookSlot метка операции в метриках
const OperationBookSlot = "book_slot"

// UseCase use case для бронирования одного слота по ID
type UseCase struct {
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(txManager TransactionManager, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет бронирование
// Чтение, проверка и запись выполняются под одной блокировкой менеджера транзакций
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	operation := req.Operation
	if operation == "" {
		operation = OperationBookSlot
	}

	uc.logger.Info("BookSlot: slot=%d, vehicle=%s, type=%s, service=%s, risk=%s",
		req.SlotID, req.VehicleID, req.VehicleType, req.ServiceType, req.RiskLevel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		uc.metrics.RecordBooking(operation, metrics.ResultRejected)
		return nil, err
	}

	details := domain.BookingDetails{
		VehicleID:   strings.TrimSpace(req.VehicleID),
		VehicleType: req.VehicleType,
		ServiceType: req.ServiceType,
		RiskLevel:   req.RiskLevel,
	}

	var result *Response

	// 2. Бронирование внутри транзакции: при ошибке календарь не сохраняется
	err := uc.txManager.Do(ctx, func(_ context.Context, cal *domain.Calendar) error {
		confirmation, err := scheduler.BookByID(cal, req.SlotID, details)
		if err != nil {
			return err
		}

		slot := cal.SlotByID(req.SlotID)
		result = &Response{
			Confirmation: confirmation,
			SlotID:       slot.ID,
			Day:          slot.Day,
			Time:         slot.Time,
			Used:         slot.Used,
			Capacity:     slot.Capacity,
		}
		return nil
	})

	// 3. Трансляция ошибок планировщика
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
			uc.metrics.RecordBooking(operation, metrics.ResultRejected)
			return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, req.SlotID)
		case errors.Is(err, scheduler.ErrSlotFull):
			uc.logger.Warn("BookSlot: slot id=%d is full", req.SlotID)
			uc.metrics.RecordBooking(operation, metrics.ResultRejected)
			return nil, fmt.Errorf("%w: id=%d", ErrSlotFull, req.SlotID)
		case errors.Is(err, scheduler.ErrInvalidInput):
			uc.metrics.RecordBooking(operation, metrics.ResultRejected)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("BookSlot: failed to book slot id=%d: %v", req.SlotID, err)
			uc.metrics.RecordBooking(operation, metrics.ResultError)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.RecordBooking(operation, metrics.ResultSuccess)
	uc.logger.Info("BookSlot: %s", result.Confirmation)

	return result, nil
}
