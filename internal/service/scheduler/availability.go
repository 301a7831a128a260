package scheduler

import "github.com/Saikabilane/AutoSense/internal/domain"

// AvailableSlots возвращает описания "<Day> <HH:MM>" всех доступных слотов в порядке ID
func AvailableSlots(cal *domain.Calendar) []string {
	out := make([]string, 0, cal.Len())
	for _, s := range cal.Slots {
		if s.IsAvailable() {
			out = append(out, s.Descriptor())
		}
	}
	return out
}

// AvailableSlotList возвращает копии доступных слотов в порядке ID
func AvailableSlotList(cal *domain.Calendar) []domain.Slot {
	out := make([]domain.Slot, 0, cal.Len())
	for _, s := range cal.Slots {
		if s.IsAvailable() {
			out = append(out, *s)
		}
	}
	return out
}
