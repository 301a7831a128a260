package seed_calendar

// Request модель запроса на заполнение календаря синтетическими бронированиями
type Request struct {
	Ratio       float64 // Доля слотов в [0, 1]
	MaxAttempts int     // 0 = значение из конфигурации или бюджет по умолчанию
	Seed        *uint64 // Фиксированное зерно генератора, nil = случайное
}

// Response модель ответа с итогом заполнения
type Response struct {
	Target    int
	Booked    int
	Attempts  int
	Exhausted bool // Цель не достигнута, сохранен частичный результат
	Available int  // Доступных слотов после заполнения
}
