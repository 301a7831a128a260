package get_available_slots

import (
	getAvailableSlots "github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Descriptors []string        `json:"descriptors"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	SlotID         int64  `json:"slotId"`
	Day            string `json:"day"`
	Time           string `json:"time"`
	Descriptor     string `json:"descriptor"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotID:         slot.ID,
			Day:            slot.Day,
			Time:           slot.Time.String(),
			Descriptor:     slot.Descriptor,
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
		}
	}

	return &AvailableSlotsResponse{
		Descriptors: resp.Descriptors,
		Slots:       slots,
	}
}
