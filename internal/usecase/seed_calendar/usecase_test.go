package seed_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

type fakeTx struct {
	cal     *domain.Calendar
	saves   int
	loadErr error
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	working := f.cal.Clone()
	if err := fn(ctx, working); err != nil {
		return err
	}
	f.cal = working
	f.saves++
	return nil
}

type fakeMetrics struct {
	seeded    int
	available int
}

func (m *fakeMetrics) RecordSeeded(n int) { m.seeded += n }
func (m *fakeMetrics) SetAvailableSlots(n int) { m.available = n }

func generate(t *testing.T, cfg domain.CalendarConfig) *domain.Calendar {
	t.Helper()
	cal, err := scheduler.GenerateSlots(cfg, time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return cal
}

func seedPtr(v uint64) *uint64 { return &v }

func TestExecute_ReachesTarget(t *testing.T) {
	tx := &fakeTx{cal: generate(t, domain.DefaultCalendarConfig())}
	m := &fakeMetrics{}
	uc := NewUseCase(tx, 60, 0, m, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Ratio: 0.2, Seed: seedPtr(7)})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Target)
	assert.Equal(t, 12, resp.Booked)
	assert.False(t, resp.Exhausted)
	assert.Equal(t, 1, tx.saves)
	assert.Equal(t, 12, m.seeded)
	assert.Equal(t, tx.cal.AvailableCount(), resp.Available)
	assert.Less(t, resp.Available, tx.cal.Len())
}

func TestExecute_DeterministicWithSeed(t *testing.T) {
	run := func() *domain.Calendar {
		tx := &fakeTx{cal: generate(t, domain.DefaultCalendarConfig())}
		_, err := NewUseCase(tx, 60, 0, &fakeMetrics{}, logger.Nop()).
			Execute(context.Background(), &Request{Ratio: 0.3, Seed: seedPtr(42)})
		require.NoError(t, err)
		return tx.cal
	}

	a, b := run(), run()
	for i := range a.Slots {
		assert.Equal(t, *a.Slots[i], *b.Slots[i])
	}
}

func TestExecute_ExhaustedPersistsPartialProgress(t *testing.T) {
	cfg := domain.CalendarConfig{
		HorizonDays:         1,
		FirstSlotHour:       9,
		LastSlotHour:        10,
		SlotDurationMinutes: 60,
		SlotCapacity:        1,
	}
	cal := generate(t, cfg)
	cal.Slots[0].Status = domain.SlotBooked

	tx := &fakeTx{cal: cal}
	m := &fakeMetrics{}
	uc := NewUseCase(tx, 60, 500, m, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Ratio: 1.0, Seed: seedPtr(1)})
	require.NoError(t, err)

	assert.True(t, resp.Exhausted)
	assert.Equal(t, 2, resp.Target)
	assert.Less(t, resp.Booked, resp.Target)
	assert.LessOrEqual(t, resp.Attempts, 500)
	assert.Equal(t, 1, tx.saves)
	assert.Zero(t, resp.Available)
}

func TestExecute_InvalidRatio(t *testing.T) {
	tx := &fakeTx{cal: generate(t, domain.DefaultCalendarConfig())}
	uc := NewUseCase(tx, 60, 0, &fakeMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Ratio: 1.5})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, tx.saves)
}

func TestExecute_LoadFailure(t *testing.T) {
	tx := &fakeTx{loadErr: errors.New("corrupt")}
	uc := NewUseCase(tx, 60, 0, &fakeMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Ratio: 0.5})
	assert.ErrorIs(t, err, ErrInternal)
}
