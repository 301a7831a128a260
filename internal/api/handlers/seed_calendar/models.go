package seed_calendar

import (
	seedCalendar "github.com/Saikabilane/AutoSense/internal/usecase/seed_calendar"
)

// SeedRequest HTTP request model
type SeedRequest struct {
	Ratio       *float64 `json:"ratio"`
	MaxAttempts int      `json:"maxAttempts,omitempty"`
	Seed        *uint64  `json:"seed,omitempty"`
}

// SeedResponse HTTP response model
type SeedResponse struct {
	Target    int  `json:"target"`
	Booked    int  `json:"booked"`
	Attempts  int  `json:"attempts"`
	Exhausted bool `json:"exhausted"`
	Available int  `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// defaultRatio используется, если ratio не передан
func (r *SeedRequest) ToUseCaseRequest(defaultRatio float64) *seedCalendar.Request {
	ratio := defaultRatio
	if r.Ratio != nil {
		ratio = *r.Ratio
	}
	return &seedCalendar.Request{
		Ratio:       ratio,
		MaxAttempts: r.MaxAttempts,
		Seed:        r.Seed,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *seedCalendar.Response) *SeedResponse {
	return &SeedResponse{
		Target:    resp.Target,
		Booked:    resp.Booked,
		Attempts:  resp.Attempts,
		Exhausted: resp.Exhausted,
		Available: resp.Available,
	}
}
