package triage_vehicle

import (
	triageVehicle "github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
)

// TriageRequest HTTP request model, совпадает с сообщением ленты решений
type TriageRequest struct {
	VehicleID    string `json:"vehicleId"`
	VehicleType  string `json:"vehicleType,omitempty"`
	VehicleModel string `json:"vehicleModel,omitempty"`
	Decision     string `json:"decision"`
	RiskLevel    string `json:"riskLevel,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

// TriageResponse HTTP response model
type TriageResponse struct {
	Outcome      string   `json:"outcome"`
	Decision     string   `json:"decision"`
	OfferedSlots []string `json:"offeredSlots,omitempty"`
	Selection    string   `json:"selection,omitempty"`
	SlotID       int64    `json:"slotId,omitempty"`
	Confirmation string   `json:"confirmation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TriageRequest) ToUseCaseRequest() *triageVehicle.Request {
	return &triageVehicle.Request{
		VehicleID:    r.VehicleID,
		VehicleType:  r.VehicleType,
		VehicleModel: r.VehicleModel,
		Decision:     r.Decision,
		RiskLevel:    r.RiskLevel,
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *triageVehicle.Response) *TriageResponse {
	return &TriageResponse{
		Outcome:      string(resp.Outcome),
		Decision:     resp.Decision,
		OfferedSlots: resp.OfferedSlots,
		Selection:    resp.Selection,
		SlotID:       resp.SlotID,
		Confirmation: resp.Confirmation,
	}
}
