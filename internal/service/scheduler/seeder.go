package scheduler

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// MinSeedAttempts нижняя граница бюджета попыток сидера
const MinSeedAttempts = 100

// SeedAttemptsPerSlot количество попыток на слот календаря по умолчанию
const SeedAttemptsPerSlot = 50

// SeedOptions параметры случайного заполнения календаря
type SeedOptions struct {
	Ratio       float64 // Доля слотов, которую нужно забронировать, в [0, 1]
	SlotMinutes int
	MaxAttempts int // 0 = max(MinSeedAttempts, SeedAttemptsPerSlot*slots)
	Rand        *rand.Rand
}

// SeedResult итог работы сидера
type SeedResult struct {
	Target    int // floor(slots * ratio)
	Booked    int // Количество успешных событий бронирования
	Attempts  int
	Exhausted bool // Бюджет попыток исчерпан или свободных слотов не осталось
}

// Seed заполняет часть календаря синтетическими бронированиями через BookContiguous
// При нехватке места возвращает частичный результат вместе с ErrInsufficientCapacity
func Seed(cal *domain.Calendar, opts SeedOptions) (SeedResult, error) {
	if opts.Ratio < 0 || opts.Ratio > 1 {
		return SeedResult{}, fmt.Errorf("%w: ratio must be in [0, 1], got %v", ErrInvalidInput, opts.Ratio)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	total := cal.Len()
	result := SeedResult{Target: int(float64(total) * opts.Ratio)}

	budget := opts.MaxAttempts
	if budget <= 0 {
		budget = max(MinSeedAttempts, SeedAttemptsPerSlot*total)
	}

	categories := domain.VehicleCategories()

	for result.Booked < result.Target {
		if result.Attempts >= budget || cal.AvailableCount() == 0 {
			result.Exhausted = true
			return result, fmt.Errorf("%w: booked %d of %d after %d attempts",
				ErrInsufficientCapacity, result.Booked, result.Target, result.Attempts)
		}
		result.Attempts++

		// Кандидат выбирается из всего диапазона ID, позиция = ID - 1
		startIndex := rng.IntN(total)

		vehicleType := categories[rng.IntN(len(categories))]
		services := domain.ServicesFor(vehicleType)
		details := domain.BookingDetails{
			VehicleType: vehicleType,
			ServiceType: services[rng.IntN(len(services))],
			RiskLevel:   domain.RiskLevels[rng.IntN(len(domain.RiskLevels))],
			VehicleID:   SyntheticVehicleID(vehicleType, rng),
		}

		if _, err := BookContiguous(cal, details, startIndex, opts.SlotMinutes); err != nil {
			continue
		}
		result.Booked++
	}

	return result, nil
}

// SyntheticVehicleID собирает ID вида "CA1234": две буквы категории и четыре случайные цифры
func SyntheticVehicleID(vehicleType string, rng *rand.Rand) string {
	prefix := strings.ToUpper(vehicleType)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("%s%d", prefix, 1000+rng.IntN(9000))
}
