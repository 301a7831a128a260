package book_range

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// TransactionManager интерфейс для сериализации операций над календарем
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	RecordBooking(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
