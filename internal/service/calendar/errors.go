package calendar

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("calendar: slot not found")

	// ErrNoBookings возвращается, когда у автомобиля нет бронирований
	ErrNoBookings = errors.New("calendar: vehicle has no bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
