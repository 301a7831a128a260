package calendar

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// TransactionManager интерфейс чтения календаря
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
