package scheduler

import "errors"

var (
	// ErrSlotNotFound возвращается, когда в календаре нет слота с таким ID
	ErrSlotNotFound = errors.New("scheduler: slot not found")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана
	ErrSlotFull = errors.New("scheduler: slot already full")

	// ErrRangeUnavailable возвращается, когда непрерывный блок выходит за горизонт
	// или пересекается с недоступным слотом
	ErrRangeUnavailable = errors.New("scheduler: contiguous range unavailable")

	// ErrInsufficientCapacity возвращается, когда сидер исчерпал бюджет попыток
	// до достижения целевого количества бронирований
	ErrInsufficientCapacity = errors.New("scheduler: insufficient capacity to reach seeding target")

	// ErrInvalidConfig возвращается при некорректных параметрах генерации календаря
	ErrInvalidConfig = errors.New("scheduler: invalid calendar config")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("scheduler: invalid input data")
)
