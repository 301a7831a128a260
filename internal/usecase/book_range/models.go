package book_range

import "github.com/Saikabilane/AutoSense/pkg/types"

// Request модель запроса на бронирование непрерывного блока
type Request struct {
	StartIndex  int // Позиция первого слота в календаре, с нуля
	VehicleID   string
	VehicleType string
	ServiceType string
	RiskLevel   string
}

// Response модель ответа с забронированным блоком
type Response struct {
	StartID         int64
	EndID           int64
	DurationMinutes int
	Slots           []Slot
}

// Slot забронированный слот блока
type Slot struct {
	ID   int64
	Day  string
	Time types.TimeString
	Used int
}
