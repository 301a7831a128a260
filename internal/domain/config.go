package domain

// CalendarConfig describes the shape of a generated calendar horizon
type CalendarConfig struct {
	HorizonDays         int
	FirstSlotHour       int // Start hour of the first slot of a day
	LastSlotHour        int // Start hour of the last slot of a day, inclusive
	SlotDurationMinutes int
	SlotCapacity        int
}

// DefaultCalendarConfig returns the standard one-week 09:00-17:00 hourly calendar
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		HorizonDays:         DefaultHorizonDays,
		FirstSlotHour:       DefaultFirstSlotHour,
		LastSlotHour:        DefaultLastSlotHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		SlotCapacity:        DefaultSlotCapacity,
	}
}

// SlotsPerDay returns how many slot start times fit in the daily window
func (c CalendarConfig) SlotsPerDay() int {
	if c.SlotDurationMinutes <= 0 || c.LastSlotHour < c.FirstSlotHour {
		return 0
	}
	return (c.LastSlotHour-c.FirstSlotHour)*60/c.SlotDurationMinutes + 1
}

// TotalSlots returns the number of slots in the whole horizon
func (c CalendarConfig) TotalSlots() int {
	return c.HorizonDays * c.SlotsPerDay()
}
