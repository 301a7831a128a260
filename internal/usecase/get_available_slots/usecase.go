package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
)

// UseCase use case для получения доступных слотов для бронирования
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: day=%q, limit=%d", req.Day, req.Limit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	var available []domain.Slot

	// 2. Читаем календарь без записи
	err := uc.txManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
		available = scheduler.AvailableSlotList(cal)
		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load calendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 3. Гейдж отражает весь календарь, а не отфильтрованную выборку
	uc.metrics.SetAvailableSlots(len(available))

	// 4. Фильтрация и ограничение выборки
	resp := &Response{
		Descriptors: make([]string, 0, len(available)),
		Slots:       make([]Slot, 0, len(available)),
	}
	for i := range available {
		s := &available[i]
		if req.Day != "" && !strings.EqualFold(s.Day, req.Day) {
			continue
		}
		if req.Limit > 0 && len(resp.Slots) >= req.Limit {
			break
		}

		resp.Descriptors = append(resp.Descriptors, s.Descriptor())
		resp.Slots = append(resp.Slots, Slot{
			ID:             s.ID,
			Day:            s.Day,
			Time:           s.Time,
			Descriptor:     s.Descriptor(),
			AvailableSpots: s.Capacity - s.Used,
			TotalSpots:     s.Capacity,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d available slots returned", len(resp.Slots), len(available))

	return resp, nil
}
