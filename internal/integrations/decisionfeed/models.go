package decisionfeed

import (
	"strings"

	"github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
)

// Message решение диагностики, опубликованное в топик
type Message struct {
	VehicleID    string `json:"vehicleId"`
	VehicleType  string `json:"vehicleType"`
	VehicleModel string `json:"vehicleModel,omitempty"`
	Decision     string `json:"decision"`
	RiskLevel    string `json:"riskLevel,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

// ToTriageRequest конвертирует сообщение в запрос сценария триажа
func (m *Message) ToTriageRequest() *triage_vehicle.Request {
	return &triage_vehicle.Request{
		VehicleID:    strings.TrimSpace(m.VehicleID),
		VehicleType:  strings.TrimSpace(m.VehicleType),
		VehicleModel: strings.TrimSpace(m.VehicleModel),
		Decision:     m.Decision,
		RiskLevel:    strings.TrimSpace(m.RiskLevel),
		CustomerName: strings.TrimSpace(m.CustomerName),
		PhoneNumber:  strings.TrimSpace(m.PhoneNumber),
	}
}
