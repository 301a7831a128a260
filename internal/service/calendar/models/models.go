package models

import (
	"errors"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// GetCalendarRequest запрос на получение календаря
type GetCalendarRequest struct {
	Status *string `json:"status,omitempty"` // FREE или BOOKED (опционально)
	Day    *string `json:"day,omitempty"`    // День недели (опционально)
}

// Filter фильтр слотов календаря
type Filter struct {
	Status *domain.SlotStatus
	Day    *string
}

// ToFilter конвертирует request в фильтр
func (r *GetCalendarRequest) ToFilter() (Filter, error) {
	filter := Filter{Day: r.Day}

	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Matches проверяет, проходит ли слот фильтр
func (f Filter) Matches(s *domain.Slot) bool {
	if f.Status != nil && s.Status != *f.Status {
		return false
	}
	if f.Day != nil && !strings.EqualFold(s.Day, *f.Day) {
		return false
	}
	return true
}

// Response модели

// SlotResponse ответ с данными слота, все сохраняемые колонки таблицы
type SlotResponse struct {
	ID          int64   `json:"slotId"`
	Day         string  `json:"day"`
	Time        string  `json:"time"` // "10:00"
	Status      string  `json:"status"`
	VehicleID   string  `json:"vehicleId"`
	RiskLevel   string  `json:"riskLevel"`
	ServiceType string  `json:"serviceType"`
	Capacity    int     `json:"capacity"`
	Used        int     `json:"used"`
	VehicleType string  `json:"vehicleType"`
	Available   bool    `json:"available"`
	Occupancy   float64 `json:"occupancyRate"`
}

// CalendarResponse ответ со списком слотов
type CalendarResponse struct {
	Slots     []SlotResponse `json:"slots"`
	Total     int            `json:"total"`     // Слотов в календаре
	Available int            `json:"available"` // Доступных слотов в календаре
	Booked    int            `json:"booked"`    // Слотов со статусом BOOKED
}

// Converters

// FromDomainSlot конвертирует domain.Slot в SlotResponse
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		Day:         s.Day,
		Time:        s.Time.String(),
		Status:      string(s.Status),
		VehicleID:   s.VehicleID,
		RiskLevel:   s.RiskLevel,
		ServiceType: s.ServiceType,
		Capacity:    s.Capacity,
		Used:        s.Used,
		VehicleType: s.VehicleType,
		Available:   s.IsAvailable(),
		Occupancy:   s.OccupancyRate(),
	}
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	s := domain.SlotStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
