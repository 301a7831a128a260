package triage_vehicle

import (
	"context"

	"github.com/Saikabilane/AutoSense/internal/integrations/callservice"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_slot"
	"github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
)

// SlotLister интерфейс получения доступных слотов
type SlotLister interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// SlotBooker интерфейс бронирования слота по ID
type SlotBooker interface {
	Execute(ctx context.Context, req *book_slot.Request) (*book_slot.Response, error)
}

// CallServiceClient интерфейс клиента сервиса звонков
type CallServiceClient interface {
	PlaceCallWithGracefulDegradation(ctx context.Context, call callservice.CallRequest) (*callservice.CallResult, error)
}

// Metrics интерфейс метрик триажа
type Metrics interface {
	RecordTriage(decision, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
