package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слота с таким ID нет в календаре
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана
	ErrSlotFull = errors.New("book_slot: slot already full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при ошибках чтения или записи календаря
	ErrInternal = errors.New("book_slot: internal error")
)
