package generate_calendar

import (
	"context"

	generateCalendar "github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
)

type GenerateCalendarUseCase interface {
	Execute(ctx context.Context, req *generateCalendar.Request) (*generateCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
