package callservice

import "errors"

var (
	// ErrNoSelection возвращается, когда клиент не выбрал слот во время звонка
	ErrNoSelection = errors.New("callservice: customer made no selection")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("callservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("callservice client: invalid response")

	// ErrServiceDegraded возвращается, когда сервис звонков недоступен
	// Сценарий триажа в этом случае завершается без бронирования
	ErrServiceDegraded = errors.New("callservice unavailable: graceful degradation applied")
)
