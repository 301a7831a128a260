package seed_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Ratio < 0 || req.Ratio > 1 {
		return fmt.Errorf("%w: ratio must be in [0, 1]", ErrInvalidInput)
	}

	if req.MaxAttempts < 0 {
		return fmt.Errorf("%w: maxAttempts must not be negative", ErrInvalidInput)
	}

	return nil
}
