package book_slot

import (
	bookSlot "github.com/Saikabilane/AutoSense/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	VehicleID   string `json:"vehicleId"`
	VehicleType string `json:"vehicleType,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	RiskLevel   string `json:"riskLevel,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Confirmation string `json:"confirmation"`
	SlotID       int64  `json:"slotId"`
	Day          string `json:"day"`
	Time         string `json:"time"`
	Used         int    `json:"used"`
	Capacity     int    `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(slotID int64) *bookSlot.Request {
	return &bookSlot.Request{
		SlotID:      slotID,
		VehicleID:   r.VehicleID,
		VehicleType: r.VehicleType,
		ServiceType: r.ServiceType,
		RiskLevel:   r.RiskLevel,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		Confirmation: resp.Confirmation,
		SlotID:       resp.SlotID,
		Day:          resp.Day,
		Time:         resp.Time.String(),
		Used:         resp.Used,
		Capacity:     resp.Capacity,
	}
}
