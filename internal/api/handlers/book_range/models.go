package book_range

import (
	bookRange "github.com/Saikabilane/AutoSense/internal/usecase/book_range"
)

// BookRangeRequest HTTP request model
type BookRangeRequest struct {
	StartIndex  *int   `json:"startIndex"` // Позиция первого слота, с нуля
	VehicleID   string `json:"vehicleId"`
	VehicleType string `json:"vehicleType"`
	ServiceType string `json:"serviceType"`
	RiskLevel   string `json:"riskLevel,omitempty"`
}

// RangeResponse HTTP response model
type RangeResponse struct {
	StartSlotID     int64       `json:"startSlotId"`
	EndSlotID       int64       `json:"endSlotId"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []RangeSlot `json:"slots"`
}

// RangeSlot забронированный слот блока
type RangeSlot struct {
	SlotID int64  `json:"slotId"`
	Day    string `json:"day"`
	Time   string `json:"time"`
	Used   int    `json:"used"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRangeRequest) ToUseCaseRequest() *bookRange.Request {
	return &bookRange.Request{
		StartIndex:  *r.StartIndex,
		VehicleID:   r.VehicleID,
		VehicleType: r.VehicleType,
		ServiceType: r.ServiceType,
		RiskLevel:   r.RiskLevel,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRange.Response) *RangeResponse {
	slots := make([]RangeSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = RangeSlot{SlotID: s.ID, Day: s.Day, Time: s.Time.String(), Used: s.Used}
	}

	return &RangeResponse{
		StartSlotID:     resp.StartID,
		EndSlotID:       resp.EndID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
