package seed_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("seed_calendar: invalid input data")

	// ErrInternal возвращается при ошибках чтения или записи календаря
	ErrInternal = errors.New("seed_calendar: internal error")
)
