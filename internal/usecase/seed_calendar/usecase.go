package seed_calendar

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
)

// UseCase use case для случайного заполнения календаря
type UseCase struct {
	txManager   TransactionManager
	slotMinutes int
	maxAttempts int
	newRand     func(seed *uint64) *rand.Rand
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// maxAttempts бюджет попыток из конфигурации, 0 = по числу слотов
// slotMinutes шаг сетки, если его нельзя определить по календарю
func NewUseCase(txManager TransactionManager, slotMinutes, maxAttempts int, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		txManager:   txManager,
		slotMinutes: slotMinutes,
		maxAttempts: maxAttempts,
		newRand:     newRand,
		metrics:     metrics,
		logger:      logger,
	}
}

func newRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// Execute заполняет календарь
// Если цель недостижима, сохраняется частичный результат и Exhausted = true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SeedCalendar: ratio=%.2f, maxAttempts=%d", req.Ratio, req.MaxAttempts)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SeedCalendar: validation failed: %v", err)
		return nil, err
	}

	opts := scheduler.SeedOptions{
		Ratio:       req.Ratio,
		MaxAttempts: req.MaxAttempts,
		Rand:        uc.newRand(req.Seed),
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = uc.maxAttempts
	}

	var (
		result    scheduler.SeedResult
		available int
	)

	// 2. Заполнение в одной транзакции, частичный прогресс тоже сохраняется
	err := uc.txManager.Do(ctx, func(_ context.Context, cal *domain.Calendar) error {
		// Шаг берется из сохраненного календаря, а не из конфигурации
		opts.SlotMinutes = scheduler.SlotGranularity(cal, uc.slotMinutes)

		var seedErr error
		result, seedErr = scheduler.Seed(cal, opts)
		if seedErr != nil && !errors.Is(seedErr, scheduler.ErrInsufficientCapacity) {
			return seedErr
		}
		available = cal.AvailableCount()
		return nil
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("SeedCalendar: failed to seed calendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.RecordSeeded(result.Booked)
	uc.metrics.SetAvailableSlots(available)

	if result.Exhausted {
		uc.logger.Warn("SeedCalendar: target not reached, booked %d of %d after %d attempts",
			result.Booked, result.Target, result.Attempts)
	} else {
		uc.logger.Info("SeedCalendar: booked %d events in %d attempts", result.Booked, result.Attempts)
	}

	return &Response{
		Target:    result.Target,
		Booked:    result.Booked,
		Attempts:  result.Attempts,
		Exhausted: result.Exhausted,
		Available: available,
	}, nil
}
