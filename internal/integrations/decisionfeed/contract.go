package decisionfeed

import (
	"context"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
)

// TriageUseCase интерфейс сценария триажа
type TriageUseCase interface {
	Execute(ctx context.Context, req *triage_vehicle.Request) (*triage_vehicle.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// pahoClient часть paho.Client, используемая подписчиком
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}
