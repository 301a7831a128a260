package generate_calendar

import (
	"context"
	"fmt"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/pkg/ptr"
)

// UseCase use case для генерации нового календаря на горизонт
type UseCase struct {
	txManager    TransactionManager
	defaults     domain.CalendarConfig
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// defaults параметры календаря из конфигурации сервиса
func NewUseCase(txManager TransactionManager, defaults domain.CalendarConfig, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		txManager:    txManager,
		defaults:     defaults,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute генерирует свободный календарь и целиком заменяет им хранилище
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Собираем параметры: запрос поверх конфигурации
	cfg := mergeConfig(uc.defaults, req)

	uc.logger.Info("GenerateCalendar: days=%d, hours=%d-%d, step=%dm, capacity=%d",
		cfg.HorizonDays, cfg.FirstSlotHour, cfg.LastSlotHour, cfg.SlotDurationMinutes, cfg.SlotCapacity)

	// 2. Генерируем слоты от завтрашнего дня
	cal, err := scheduler.GenerateSlots(cfg, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GenerateCalendar: invalid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 3. Полностью заменяем таблицу
	if err := uc.txManager.Replace(ctx, cal); err != nil {
		uc.logger.Error("GenerateCalendar: failed to save calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to save calendar: %v", ErrInternal, err)
	}

	uc.metrics.SetAvailableSlots(cal.Len())

	first, last := cal.Slots[0], cal.Slots[cal.Len()-1]
	uc.logger.Info("GenerateCalendar: generated %d slots, %s to %s", cal.Len(), first.Day, last.Day)

	return &Response{
		TotalSlots:  cal.Len(),
		SlotsPerDay: cfg.SlotsPerDay(),
		FirstDay:    first.Day,
		LastDay:     last.Day,
		FirstSlotID: first.ID,
		LastSlotID:  last.ID,
	}, nil
}

func mergeConfig(defaults domain.CalendarConfig, req *Request) domain.CalendarConfig {
	cfg := defaults
	if req == nil {
		return cfg
	}
	if req.HorizonDays != 0 {
		cfg.HorizonDays = req.HorizonDays
	}
	cfg.FirstSlotHour = ptr.Value(req.FirstSlotHour, cfg.FirstSlotHour)
	cfg.LastSlotHour = ptr.Value(req.LastSlotHour, cfg.LastSlotHour)
	if req.SlotDurationMinutes != 0 {
		cfg.SlotDurationMinutes = req.SlotDurationMinutes
	}
	if req.SlotCapacity != 0 {
		cfg.SlotCapacity = req.SlotCapacity
	}
	return cfg
}
