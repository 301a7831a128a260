package get_vehicle_bookings

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/service/calendar/models"
)

type CalendarService interface {
	GetVehicleBookings(ctx context.Context, vehicleID string) ([]models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
