package domain

// BookingDetails carries the vehicle data stamped onto every booked slot
type BookingDetails struct {
	VehicleID   string
	VehicleType string
	ServiceType string
	RiskLevel   string
}

// Range describes a committed contiguous booking
type Range struct {
	StartID int64
	EndID   int64 // inclusive
	Slots   []Slot
}

// Len returns the number of slots in the range
func (r Range) Len() int {
	return len(r.Slots)
}
