package decisionfeed

import "errors"

var (
	// ErrConnect ошибка подключения к брокеру
	ErrConnect = errors.New("decisionfeed: failed to connect to broker")
	// ErrSubscribe ошибка подписки на топик
	ErrSubscribe = errors.New("decisionfeed: failed to subscribe")
	// ErrInvalidMessage сообщение не разобрано
	ErrInvalidMessage = errors.New("decisionfeed: invalid message")
)
