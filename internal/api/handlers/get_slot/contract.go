package get_slot

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/service/calendar/models"
)

type CalendarService interface {
	GetSlot(ctx context.Context, id int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
