package book_range

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartIndex < 0 {
		return fmt.Errorf("%w: startIndex must not be negative", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if !slices.Contains(domain.VehicleCategories(), req.VehicleType) {
		return fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if req.RiskLevel != "" && !slices.Contains(domain.RiskLevels, req.RiskLevel) {
		return fmt.Errorf("%w: unknown riskLevel %q", ErrInvalidInput, req.RiskLevel)
	}

	return nil
}
