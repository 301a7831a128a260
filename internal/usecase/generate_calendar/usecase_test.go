package generate_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/pkg/logger"
	"github.com/Saikabilane/AutoSense/pkg/ptr"
)

type fakeTx struct {
	saved   *domain.Calendar
	saveErr error
}

func (f *fakeTx) Replace(_ context.Context, cal *domain.Calendar) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = cal
	return nil
}

type fakeMetrics struct{ available int }

func (m *fakeMetrics) SetAvailableSlots(n int) { m.available = n }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(tx *fakeTx, m *fakeMetrics) *UseCase {
	uc := NewUseCase(tx, domain.DefaultCalendarConfig(), m, logger.Nop())
	// Среда, значит первый день календаря четверг
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Defaults(t *testing.T) {
	tx := &fakeTx{}
	m := &fakeMetrics{}

	resp, err := newUseCase(tx, m).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 63, resp.TotalSlots)
	assert.Equal(t, 9, resp.SlotsPerDay)
	assert.Equal(t, "Thursday", resp.FirstDay)
	assert.Equal(t, "Wednesday", resp.LastDay)
	assert.Equal(t, int64(1), resp.FirstSlotID)
	assert.Equal(t, int64(63), resp.LastSlotID)
	assert.Equal(t, 63, m.available)

	require.NotNil(t, tx.saved)
	assert.Equal(t, 63, tx.saved.AvailableCount())
}

func TestExecute_Overrides(t *testing.T) {
	tx := &fakeTx{}

	resp, err := newUseCase(tx, &fakeMetrics{}).Execute(context.Background(), &Request{
		HorizonDays:         2,
		FirstSlotHour:       ptr.Ptr(0),
		LastSlotHour:        ptr.Ptr(1),
		SlotDurationMinutes: 30,
		SlotCapacity:        1,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.TotalSlots)
	assert.Equal(t, "00:00", tx.saved.Slots[0].Time.String())
	assert.Equal(t, "01:00", tx.saved.Slots[2].Time.String())
	assert.Equal(t, "Friday", tx.saved.Slots[3].Day)
	assert.Equal(t, 1, tx.saved.Slots[0].Capacity)
}

func TestExecute_InvalidConfig(t *testing.T) {
	tx := &fakeTx{}

	_, err := newUseCase(tx, &fakeMetrics{}).Execute(context.Background(), &Request{HorizonDays: 400})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, tx.saved)
}

func TestExecute_SaveFailure(t *testing.T) {
	tx := &fakeTx{saveErr: errors.New("read-only fs")}

	_, err := newUseCase(tx, &fakeMetrics{}).Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
