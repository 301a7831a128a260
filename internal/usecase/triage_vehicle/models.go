package triage_vehicle

// Outcome итог сценария триажа
type Outcome string

const (
	OutcomeNoService   Outcome = "no_service"
	OutcomeNoSlots     Outcome = "no_slots"
	OutcomeNoSelection Outcome = "no_selection"
	OutcomeBooked      Outcome = "booked"
	OutcomeSlotTaken   Outcome = "slot_taken" // Выбранный слот заняли между звонком и бронированием
)

// Request модель запроса на обработку диагностического решения
type Request struct {
	VehicleID    string
	VehicleType  string // Scooter, Car, EV, LCV, может быть пустым
	VehicleModel string // Название для текста звонка, по умолчанию VehicleType
	Decision     string
	RiskLevel    string
	CustomerName string
	PhoneNumber  string
}

// Response модель ответа с итогом триажа
type Response struct {
	Outcome      Outcome
	Decision     string
	Script       string   // Текст звонка, пусто если звонка не было
	OfferedSlots []string // Предложенные клиенту слоты
	Selection    string   // Ответ клиента как есть
	SlotID       int64
	Confirmation string
}
