package scheduler

import (
	"fmt"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// BookByID бронирует ровно один слот по его ID независимо от длительности услуги
// Используется, когда клиент выбрал конкретный слот из списка доступных
func BookByID(cal *domain.Calendar, slotID int64, details domain.BookingDetails) (string, error) {
	if slotID <= 0 {
		return "", fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	slot := cal.SlotByID(slotID)
	if slot == nil {
		return "", fmt.Errorf("%w: id=%d", ErrSlotNotFound, slotID)
	}

	if slot.IsFull() {
		return "", fmt.Errorf("%w: id=%d, used=%d, capacity=%d", ErrSlotFull, slotID, slot.Used, slot.Capacity)
	}

	slot.Book(details)

	return Confirmation(details.VehicleID, slot), nil
}

// Confirmation формирует текст подтверждения бронирования
func Confirmation(vehicleID string, slot *domain.Slot) string {
	return fmt.Sprintf("Booking confirmed for %s (Slot ID: %d) on %s at %s.",
		vehicleID, slot.ID, slot.Day, slot.Time)
}

// BookContiguous бронирует непрерывный блок слотов, начиная с позиции startIndex (с нуля)
// Количество слотов определяется длительностью услуги из каталога.
// Либо бронируется весь блок, либо календарь не меняется.
func BookContiguous(cal *domain.Calendar, details domain.BookingDetails, startIndex int, slotMinutes int) (domain.Range, error) {
	duration := domain.ServiceDuration(details.VehicleType, details.ServiceType)
	needed := domain.SlotsNeeded(duration, slotMinutes)

	if startIndex < 0 || startIndex+needed > cal.Len() {
		return domain.Range{}, fmt.Errorf("%w: %d slots from index %d exceed horizon of %d slots",
			ErrRangeUnavailable, needed, startIndex, cal.Len())
	}

	// Сначала проверяем весь блок, затем применяем изменения
	for i := startIndex; i < startIndex+needed; i++ {
		if !cal.Slots[i].IsAvailable() {
			return domain.Range{}, fmt.Errorf("%w: slot id=%d is not available",
				ErrRangeUnavailable, cal.Slots[i].ID)
		}
	}

	committed := make([]domain.Slot, 0, needed)
	for i := startIndex; i < startIndex+needed; i++ {
		cal.Slots[i].Book(details)
		committed = append(committed, *cal.Slots[i])
	}

	return domain.Range{
		StartID: committed[0].ID,
		EndID:   committed[len(committed)-1].ID,
		Slots:   committed,
	}, nil
}
