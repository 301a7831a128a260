package seed_calendar

import (
	"context"

	seedCalendar "github.com/Saikabilane/AutoSense/internal/usecase/seed_calendar"
)

type SeedCalendarUseCase interface {
	Execute(ctx context.Context, req *seedCalendar.Request) (*seedCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
