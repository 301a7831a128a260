package get_available_slots

import "github.com/Saikabilane/AutoSense/pkg/types"

// Request модель запроса на получение доступных слотов
type Request struct {
	Day   string // Фильтр по дню недели, пусто = все дни
	Limit int    // 0 = без ограничения
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Descriptors []string // "<Day> <HH:MM>" в порядке ID
	Slots       []Slot
}

// Slot модель доступного слота
type Slot struct {
	ID             int64
	Day            string
	Time           types.TimeString
	Descriptor     string
	AvailableSpots int
	TotalSpots     int
}
