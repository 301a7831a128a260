package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/calendar/models"
)

// Service сервис чтения календаря
type Service struct {
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(txManager TransactionManager, logger Logger) *Service {
	return &Service{
		txManager: txManager,
		logger:    logger,
	}
}

// GetCalendar возвращает слоты календаря в порядке ID с опциональной фильтрацией
// Счетчики Total, Available и Booked считаются по всему календарю
func (s *Service) GetCalendar(ctx context.Context, req *models.GetCalendarRequest) (*models.CalendarResponse, error) {
	filter, err := req.ToFilter()
	if err != nil {
		s.logger.Warn("GetCalendar: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &models.CalendarResponse{Slots: make([]models.SlotResponse, 0)}

	err = s.txManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
		resp.Total = cal.Len()
		for _, slot := range cal.Slots {
			if slot.IsAvailable() {
				resp.Available++
			}
			if slot.Status == domain.SlotBooked {
				resp.Booked++
			}
			if filter.Matches(slot) {
				resp.Slots = append(resp.Slots, models.FromDomainSlot(slot))
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetCalendar: failed to load calendar: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - load calendar: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendar: returned %d of %d slots", len(resp.Slots), resp.Total)
	return resp, nil
}

// GetSlot возвращает слот по ID
func (s *Service) GetSlot(ctx context.Context, id int64) (*models.SlotResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	var result *models.SlotResponse

	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
		slot := cal.SlotByID(id)
		if slot == nil {
			return ErrSlotNotFound
		}
		resp := models.FromDomainSlot(slot)
		result = &resp
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			s.logger.Warn("GetSlot: slot id=%d not found", id)
			return nil, err
		}
		s.logger.Error("GetSlot: failed to load calendar: %v", err)
		return nil, fmt.Errorf("%w: GetSlot - load calendar: %v", ErrInternal, err)
	}

	return result, nil
}

// GetVehicleBookings возвращает слоты, в которых последним забронирован автомобиль
// В таблице хранится только последнее бронирование слота
func (s *Service) GetVehicleBookings(ctx context.Context, vehicleID string) ([]models.SlotResponse, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle id is required", ErrInvalidInput)
	}

	result := make([]models.SlotResponse, 0)

	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
		for _, slot := range cal.Slots {
			if slot.Status == domain.SlotBooked && strings.EqualFold(slot.VehicleID, vehicleID) {
				result = append(result, models.FromDomainSlot(slot))
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetVehicleBookings: failed to load calendar: %v", err)
		return nil, fmt.Errorf("%w: GetVehicleBookings - load calendar: %v", ErrInternal, err)
	}

	if len(result) == 0 {
		s.logger.Info("GetVehicleBookings: no bookings for vehicle=%s", vehicleID)
		return nil, ErrNoBookings
	}

	s.logger.Info("GetVehicleBookings: found %d slots for vehicle=%s", len(result), vehicleID)
	return result, nil
}
