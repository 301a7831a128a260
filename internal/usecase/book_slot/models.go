package book_slot

import "github.com/Saikabilane/AutoSense/pkg/types"

// Request модель запроса на бронирование слота по ID
type Request struct {
	SlotID      int64
	VehicleID   string
	VehicleType string // Scooter, Car, EV, LCV
	ServiceType string
	RiskLevel   string // High, Medium, Low
	Operation   string // Метка метрики, по умолчанию OperationBookSlot
}

// Response модель ответа с подтверждением
type Response struct {
	Confirmation string
	SlotID       int64
	Day          string
	Time         types.TimeString
	Used         int
	Capacity     int
}
