package get_available_slots

import "errors"

var (
	// ErrCalendarUnavailable возвращается, когда календарь не удалось прочитать
	ErrCalendarUnavailable = errors.New("get_available_slots: calendar unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
