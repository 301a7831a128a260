package scheduler

import (
	"fmt"
	"time"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/pkg/types"
)

// ValidateConfig проверяет параметры горизонта календаря
func ValidateConfig(cfg domain.CalendarConfig) error {
	if cfg.HorizonDays < domain.MinHorizonDays || cfg.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizon days must be between %d and %d",
			ErrInvalidConfig, domain.MinHorizonDays, domain.MaxHorizonDays)
	}
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.SlotCapacity < domain.MinSlotCapacity || cfg.SlotCapacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: slot capacity must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}
	if cfg.FirstSlotHour < 0 || cfg.LastSlotHour > 23 || cfg.LastSlotHour < cfg.FirstSlotHour {
		return fmt.Errorf("%w: slot hours must satisfy 0 <= first <= last <= 23", ErrInvalidConfig)
	}
	return nil
}

// GenerateSlots создает календарь на cfg.HorizonDays дней, начиная с завтрашнего дня относительно now
// ID назначаются по порядку: сначала день, затем время внутри дня
func GenerateSlots(cfg domain.CalendarConfig, now time.Time) (*domain.Calendar, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	perDay := cfg.SlotsPerDay()
	slots := make([]*domain.Slot, 0, cfg.HorizonDays*perDay)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	first, err := types.FromClock(cfg.FirstSlotHour, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var id int64 = 1
	for d := 1; d <= cfg.HorizonDays; d++ {
		date := midnight.AddDate(0, 0, d)
		dayName := date.Format(domain.DayFormat)

		for k := 0; k < perDay; k++ {
			offset := k * cfg.SlotDurationMinutes
			label, err := first.AddMinutes(offset)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}

			slots = append(slots, &domain.Slot{
				ID:       id,
				Day:      dayName,
				Time:     label,
				Status:   domain.SlotFree,
				Capacity: cfg.SlotCapacity,
				StartsAt: date.Add(time.Duration(cfg.FirstSlotHour*60+offset) * time.Minute),
			})
			id++
		}
	}

	return domain.NewCalendar(slots), nil
}

// SlotGranularity возвращает шаг сетки календаря в минутах
// Шаг определяется по первой паре соседних слотов одного дня; если в дне один слот, возвращается fallback
func SlotGranularity(cal *domain.Calendar, fallback int) int {
	for i := 1; i < cal.Len(); i++ {
		prev, next := cal.Slots[i-1], cal.Slots[i]
		if prev.Day != next.Day || !next.Time.IsAfter(prev.Time) {
			continue
		}
		a, errA := prev.Time.Minutes()
		b, errB := next.Time.Minutes()
		if errA == nil && errB == nil {
			return b - a
		}
	}
	return fallback
}
