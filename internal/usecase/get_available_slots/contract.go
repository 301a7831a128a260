package get_available_slots

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// TransactionManager интерфейс доступа к календарю
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error
}

// Metrics интерфейс метрик
type Metrics interface {
	SetAvailableSlots(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
