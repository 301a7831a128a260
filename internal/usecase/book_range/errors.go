package book_range

import "errors"

var (
	// ErrRangeUnavailable возвращается, когда блок выходит за горизонт или пересекается с недоступным слотом
	ErrRangeUnavailable = errors.New("book_range: contiguous range unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_range: invalid input data")

	// ErrInternal возвращается при ошибках чтения или записи календаря
	ErrInternal = errors.New("book_range: internal error")
)
