package triage_vehicle

import "errors"

var (
	// ErrUnknownDecision возвращается для нераспознанного диагностического решения
	ErrUnknownDecision = errors.New("triage_vehicle: unknown decision")

	// ErrSlotUnavailable возвращается, когда выбранный клиентом слот заняли до бронирования
	ErrSlotUnavailable = errors.New("triage_vehicle: selected slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("triage_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("triage_vehicle: internal error")
)
