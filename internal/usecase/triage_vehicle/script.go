package triage_vehicle

import (
	"strconv"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
)

// buildScript собирает текст звонка: приветствие, причина и список слотов по одному в строке
func buildScript(customer, vehicle string, decision domain.Decision, slots []string) string {
	if customer == "" {
		customer = "Customer"
	}
	if vehicle == "" {
		vehicle = "vehicle"
	}

	var b strings.Builder
	b.WriteString("Hello ")
	b.WriteString(customer)
	b.WriteString(",\nThis call is to inform you that your ")
	b.WriteString(vehicle)
	b.WriteString(" needs service due to ")
	b.WriteString(decision.Reason())
	b.WriteString(".\nAvailable slots are: ")
	for _, s := range slots {
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

// distinctOffer оставляет первый по ID слот для каждого описания "<Day> <HH:MM>"
// При горизонте больше недели описания повторяются, и ответ клиента был бы неоднозначным
func distinctOffer(slots []get_available_slots.Slot) ([]get_available_slots.Slot, []string) {
	seen := make(map[string]struct{}, len(slots))
	offered := make([]get_available_slots.Slot, 0, len(slots))
	descriptors := make([]string, 0, len(slots))
	for _, s := range slots {
		key := strings.ToLower(s.Descriptor)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		offered = append(offered, s)
		descriptors = append(descriptors, s.Descriptor)
	}
	return offered, descriptors
}

// resolveSelection сопоставляет ответ клиента с предложенным слотом
// Порядок: ID слота, точное описание, описание внутри свободного текста (без учета регистра)
func resolveSelection(selection string, offered []get_available_slots.Slot) (get_available_slots.Slot, bool) {
	answer := strings.TrimSpace(selection)
	if answer == "" {
		return get_available_slots.Slot{}, false
	}

	if id, err := strconv.ParseInt(answer, 10, 64); err == nil {
		for _, s := range offered {
			if s.ID == id {
				return s, true
			}
		}
		return get_available_slots.Slot{}, false
	}

	for _, s := range offered {
		if strings.EqualFold(s.Descriptor, answer) {
			return s, true
		}
	}

	lower := strings.ToLower(answer)
	for _, s := range offered {
		if strings.Contains(lower, strings.ToLower(s.Descriptor)) {
			return s, true
		}
	}

	return get_available_slots.Slot{}, false
}
