package book_slot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.VehicleType != "" && !slices.Contains(domain.VehicleCategories(), req.VehicleType) {
		return fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	if req.RiskLevel != "" && !slices.Contains(domain.RiskLevels, req.RiskLevel) {
		return fmt.Errorf("%w: unknown riskLevel %q", ErrInvalidInput, req.RiskLevel)
	}

	return nil
}
