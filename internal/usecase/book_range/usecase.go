package book_range

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/pkg/metrics"
)

// OperationBookRange метка операции в метриках
const OperationBookRange = "book_range"

// UseCase use case для бронирования непрерывного блока слотов под длительность услуги
type UseCase struct {
	txManager   TransactionManager
	slotMinutes int
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// slotMinutes шаг сетки, если его нельзя определить по календарю
func NewUseCase(txManager TransactionManager, slotMinutes int, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		txManager:   txManager,
		slotMinutes: slotMinutes,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет бронирование блока: весь блок или ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRange: start=%d, vehicle=%s, type=%s, service=%s",
		req.StartIndex, req.VehicleID, req.VehicleType, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRange: validation failed: %v", err)
		uc.metrics.RecordBooking(OperationBookRange, metrics.ResultRejected)
		return nil, err
	}

	details := domain.BookingDetails{
		VehicleID:   strings.TrimSpace(req.VehicleID),
		VehicleType: req.VehicleType,
		ServiceType: req.ServiceType,
		RiskLevel:   req.RiskLevel,
	}

	var booked domain.Range

	// 2. Проверка и бронирование блока в одной транзакции
	err := uc.txManager.Do(ctx, func(_ context.Context, cal *domain.Calendar) error {
		var err error
		booked, err = scheduler.BookContiguous(cal, details, req.StartIndex, scheduler.SlotGranularity(cal, uc.slotMinutes))
		return err
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrRangeUnavailable) {
			uc.logger.Warn("BookRange: %v", err)
			uc.metrics.RecordBooking(OperationBookRange, metrics.ResultRejected)
			return nil, fmt.Errorf("%w: %v", ErrRangeUnavailable, err)
		}
		uc.logger.Error("BookRange: failed to book range from index %d: %v", req.StartIndex, err)
		uc.metrics.RecordBooking(OperationBookRange, metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.RecordBooking(OperationBookRange, metrics.ResultSuccess)
	uc.logger.Info("BookRange: booked slots %d-%d for %s", booked.StartID, booked.EndID, details.VehicleID)

	resp := &Response{
		StartID:         booked.StartID,
		EndID:           booked.EndID,
		DurationMinutes: domain.ServiceDuration(req.VehicleType, req.ServiceType),
		Slots:           make([]Slot, 0, booked.Len()),
	}
	for _, s := range booked.Slots {
		resp.Slots = append(resp.Slots, Slot{ID: s.ID, Day: s.Day, Time: s.Time, Used: s.Used})
	}

	return resp, nil
}
