package generate_calendar

import (
	"context"
	"time"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// TransactionManager интерфейс для полной замены календаря
type TransactionManager interface {
	Replace(ctx context.Context, cal *domain.Calendar) error
}

// Metrics интерфейс метрик
type Metrics interface {
	SetAvailableSlots(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
