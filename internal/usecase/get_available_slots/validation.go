package get_available_slots

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	if req.Day != "" && !isWeekday(req.Day) {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidInput, req.Day)
	}

	return nil
}

func isWeekday(day string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), day) {
			return true
		}
	}
	return false
}
