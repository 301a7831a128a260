package callservice

// CallRequest тело запроса на звонок клиенту
type CallRequest struct {
	RequestID string   `json:"requestId"`
	Script    string   `json:"script"`
	Slots     []string `json:"slots"`
	Number    string   `json:"number"`
}

// CallResult ответ сервиса звонков
// Selection содержит ID слота, описание "<Day> <HH:MM>" или свободный текст ответа клиента
type CallResult struct {
	Selection string `json:"selection"`
}

// ErrorResponse модель ошибки от сервиса звонков
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
