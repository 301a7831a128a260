package book_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

// fakeTx работает с календарем в памяти и сохраняет его только при успехе fn
type fakeTx struct {
	cal   *domain.Calendar
	saves int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error {
	working := f.cal.Clone()
	if err := fn(ctx, working); err != nil {
		return err
	}
	f.cal = working
	f.saves++
	return nil
}

type nopMetrics struct{}

func (nopMetrics) RecordBooking(string, string) {}

func newCalendar(t *testing.T) *domain.Calendar {
	t.Helper()
	cal, err := scheduler.GenerateSlots(domain.CalendarConfig{
		HorizonDays:         1,
		FirstSlotHour:       9,
		LastSlotHour:        17,
		SlotDurationMinutes: 60,
		SlotCapacity:        5,
	}, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return cal
}

func TestExecute_BooksWholeBlock(t *testing.T) {
	tx := &fakeTx{cal: newCalendar(t)}
	uc := NewUseCase(tx, 60, nopMetrics{}, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		StartIndex:  2,
		VehicleID:   "CA4242",
		VehicleType: domain.VehicleCar,
		ServiceType: "General Service",
		RiskLevel:   "Low",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.StartID)
	assert.Equal(t, int64(4), resp.EndID)
	assert.Equal(t, 90, resp.DurationMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "Thursday", resp.Slots[0].Day)

	for _, id := range []int64{3, 4} {
		s := tx.cal.SlotByID(id)
		assert.Equal(t, domain.SlotBooked, s.Status)
		assert.Equal(t, "CA4242", s.VehicleID)
	}
	assert.Equal(t, domain.SlotFree, tx.cal.SlotByID(5).Status)
}

func TestExecute_UsesStoredCalendarGranularity(t *testing.T) {
	cal, err := scheduler.GenerateSlots(domain.CalendarConfig{
		HorizonDays:         1,
		FirstSlotHour:       9,
		LastSlotHour:        17,
		SlotDurationMinutes: 30,
		SlotCapacity:        5,
	}, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Конфигурация говорит 60 минут, календарь сгенерирован с шагом 30
	tx := &fakeTx{cal: cal}
	uc := NewUseCase(tx, 60, nopMetrics{}, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		StartIndex:  0,
		VehicleID:   "CA0120",
		VehicleType: domain.VehicleCar,
		ServiceType: "Engine Check",
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, int64(1), resp.StartID)
	assert.Equal(t, int64(4), resp.EndID)
	assert.Equal(t, "10:30", resp.Slots[3].Time.String())
	assert.Equal(t, domain.SlotFree, tx.cal.SlotByID(5).Status)
}

func TestExecute_BeyondHorizonLeavesCalendarUntouched(t *testing.T) {
	tx := &fakeTx{cal: newCalendar(t)}
	uc := NewUseCase(tx, 60, nopMetrics{}, logger.Nop())

	last := tx.cal.Len() - 1
	_, err := uc.Execute(context.Background(), &Request{
		StartIndex:  last,
		VehicleID:   "LC9999",
		VehicleType: domain.VehicleLCV,
		ServiceType: "Major Service",
	})
	assert.ErrorIs(t, err, ErrRangeUnavailable)
	assert.Zero(t, tx.saves)
	assert.Equal(t, tx.cal.Len(), tx.cal.AvailableCount())
}

func TestExecute_OverlapWithBookedSlot(t *testing.T) {
	cal := newCalendar(t)
	cal.Slots[1].Status = domain.SlotBooked
	tx := &fakeTx{cal: cal}
	uc := NewUseCase(tx, 60, nopMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{
		StartIndex:  0,
		VehicleID:   "EV1111",
		VehicleType: domain.VehicleCar,
		ServiceType: "Engine Check",
	})
	assert.ErrorIs(t, err, ErrRangeUnavailable)
	assert.Equal(t, domain.SlotFree, tx.cal.Slots[0].Status)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeTx{cal: newCalendar(t)}, 60, nopMetrics{}, logger.Nop())

	cases := map[string]*Request{
		"negative index": {StartIndex: -1, VehicleID: "CA1", VehicleType: domain.VehicleCar, ServiceType: "Brake Check"},
		"no vehicle":     {VehicleType: domain.VehicleCar, ServiceType: "Brake Check"},
		"unknown type":   {VehicleID: "CA1", VehicleType: "Bus", ServiceType: "Brake Check"},
		"no service":     {VehicleID: "CA1", VehicleType: domain.VehicleCar},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
