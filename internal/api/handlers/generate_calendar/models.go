package generate_calendar

import (
	generateCalendar "github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
)

// GenerateCalendarRequest HTTP request model, все поля опциональны
type GenerateCalendarRequest struct {
	HorizonDays         int  `json:"horizonDays,omitempty"`
	FirstSlotHour       *int `json:"firstSlotHour,omitempty"`
	LastSlotHour        *int `json:"lastSlotHour,omitempty"`
	SlotDurationMinutes int  `json:"slotDurationMinutes,omitempty"`
	SlotCapacity        int  `json:"slotCapacity,omitempty"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	TotalSlots  int    `json:"totalSlots"`
	SlotsPerDay int    `json:"slotsPerDay"`
	FirstDay    string `json:"firstDay"`
	LastDay     string `json:"lastDay"`
	FirstSlotID int64  `json:"firstSlotId"`
	LastSlotID  int64  `json:"lastSlotId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateCalendarRequest) ToUseCaseRequest() *generateCalendar.Request {
	return &generateCalendar.Request{
		HorizonDays:         r.HorizonDays,
		FirstSlotHour:       r.FirstSlotHour,
		LastSlotHour:        r.LastSlotHour,
		SlotDurationMinutes: r.SlotDurationMinutes,
		SlotCapacity:        r.SlotCapacity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateCalendar.Response) *CalendarResponse {
	return &CalendarResponse{
		TotalSlots:  resp.TotalSlots,
		SlotsPerDay: resp.SlotsPerDay,
		FirstDay:    resp.FirstDay,
		LastDay:     resp.LastDay,
		FirstSlotID: resp.FirstSlotID,
		LastSlotID:  resp.LastSlotID,
	}
}
