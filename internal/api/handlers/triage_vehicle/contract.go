package triage_vehicle

import (
	"context"

	triageVehicle "github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
)

type TriageVehicleUseCase interface {
	Execute(ctx context.Context, req *triageVehicle.Request) (*triageVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
