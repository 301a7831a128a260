package generate_calendar

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректных параметрах календаря
	ErrInvalidConfig = errors.New("generate_calendar: invalid calendar config")

	// ErrInternal возвращается, когда календарь не удалось сохранить
	ErrInternal = errors.New("generate_calendar: internal error")
)
