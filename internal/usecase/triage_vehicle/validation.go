package triage_vehicle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.Decision, error) {
	decision, ok := domain.ParseDecision(req.Decision)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDecision, req.Decision)
	}

	if strings.TrimSpace(req.VehicleID) == "" {
		return "", fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.VehicleType != "" && !slices.Contains(domain.VehicleCategories(), req.VehicleType) {
		return "", fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	if req.RiskLevel != "" && !slices.Contains(domain.RiskLevels, req.RiskLevel) {
		return "", fmt.Errorf("%w: unknown riskLevel %q", ErrInvalidInput, req.RiskLevel)
	}

	// Номер нужен только для звонка
	if decision.RequiresService() && strings.TrimSpace(req.PhoneNumber) == "" {
		return "", fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	return decision, nil
}
