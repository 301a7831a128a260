package calendar

import "errors"

var (
	// ErrStoreUnreadable возвращается, когда таблица календаря отсутствует или не открывается
	ErrStoreUnreadable = errors.New("calendar.store: calendar table is missing or unreadable")

	// ErrStoreCorrupt возвращается, когда таблица календаря повреждена
	ErrStoreCorrupt = errors.New("calendar.store: calendar table is corrupt")

	// ErrStoreWrite возвращается при ошибке записи таблицы календаря
	ErrStoreWrite = errors.New("calendar.store: failed to write calendar table")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("calendar.store: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.store: failed to execute query")
)
