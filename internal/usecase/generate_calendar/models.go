package generate_calendar

// Request модель запроса на генерацию календаря
// Нулевые поля заменяются значениями из конфигурации сервиса
type Request struct {
	HorizonDays         int
	FirstSlotHour       *int
	LastSlotHour        *int
	SlotDurationMinutes int
	SlotCapacity        int
}

// Response модель ответа со сведениями о новом календаре
type Response struct {
	TotalSlots  int
	SlotsPerDay int
	FirstDay    string
	LastDay     string
	FirstSlotID int64
	LastSlotID  int64
}
