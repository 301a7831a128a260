package calendar

import (
	"fmt"
	"strconv"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/pkg/types"
)

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// encodeSlot раскладывает слот в строку таблицы в порядке domain.CalendarColumns
func encodeSlot(s *domain.Slot) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.Day,
		s.Time.String(),
		string(s.Status),
		s.VehicleID,
		s.RiskLevel,
		s.ServiceType,
		strconv.Itoa(s.Capacity),
		strconv.Itoa(s.Used),
		s.VehicleType,
	}
}

// decodeSlot собирает слот из строки таблицы
func decodeSlot(row []string) (*domain.Slot, error) {
	if len(row) != len(domain.CalendarColumns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(domain.CalendarColumns), len(row))
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SlotID %q: %v", row[0], err)
	}

	capacity, err := strconv.Atoi(row[7])
	if err != nil {
		return nil, fmt.Errorf("Capacity %q: %v", row[7], err)
	}

	used, err := strconv.Atoi(row[8])
	if err != nil {
		return nil, fmt.Errorf("Used %q: %v", row[8], err)
	}

	return &domain.Slot{
		ID:          id,
		Day:         row[1],
		Time:        types.TimeString(row[2]),
		Status:      domain.SlotStatus(row[3]),
		VehicleID:   row[4],
		RiskLevel:   row[5],
		ServiceType: row[6],
		Capacity:    capacity,
		Used:        used,
		VehicleType: row[9],
	}, nil
}

// validateCalendar проверяет инварианты загруженной таблицы
func validateCalendar(cal *domain.Calendar) error {
	for i, s := range cal.Slots {
		if s.ID != int64(i+1) {
			return fmt.Errorf("%w: row %d: expected SlotID %d, got %d", ErrStoreCorrupt, i+1, i+1, s.ID)
		}
		if !weekdays[s.Day] {
			return fmt.Errorf("%w: slot %d: unknown day %q", ErrStoreCorrupt, s.ID, s.Day)
		}
		if err := s.Time.Validate(); err != nil {
			return fmt.Errorf("%w: slot %d: %v", ErrStoreCorrupt, s.ID, err)
		}
		if !s.Status.IsValid() {
			return fmt.Errorf("%w: slot %d: unknown status %q", ErrStoreCorrupt, s.ID, s.Status)
		}
		if s.Capacity <= 0 {
			return fmt.Errorf("%w: slot %d: capacity must be positive", ErrStoreCorrupt, s.ID)
		}
		if s.Used < 0 || s.Used > s.Capacity {
			return fmt.Errorf("%w: slot %d: used=%d outside [0, %d]", ErrStoreCorrupt, s.ID, s.Used, s.Capacity)
		}
	}
	return nil
}
