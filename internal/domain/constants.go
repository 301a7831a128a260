package domain

// Default calendar values
const (
	DefaultHorizonDays         = 7
	DefaultFirstSlotHour       = 9
	DefaultLastSlotHour        = 17
	DefaultSlotDurationMinutes = 60
	DefaultSlotCapacity        = 5
)

// Business validation constants
const (
	MinHorizonDays         = 1
	MaxHorizonDays         = 31
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240
	MinSlotCapacity        = 1
	MaxSlotCapacity        = 100
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
	DayFormat  = "Monday"
)

// CalendarColumns is the header of the persisted calendar table, in order
var CalendarColumns = []string{
	"SlotID",
	"Day",
	"Time",
	"Status",
	"VehicleID",
	"RiskLevel",
	"ServiceType",
	"Capacity",
	"Used",
	"VehicleType",
}

// RiskLevels lists the risk labels assigned to bookings
var RiskLevels = []string{"High", "Medium", "Low"}
