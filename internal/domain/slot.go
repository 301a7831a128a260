package domain

import (
	"time"

	"github.com/Saikabilane/AutoSense/pkg/types"
)

// SlotStatus represents the booking status of a calendar slot
type SlotStatus string

const (
	SlotFree   SlotStatus = "FREE"
	SlotBooked SlotStatus = "BOOKED"
)

// IsValid returns true for the statuses the calendar table can hold
func (s SlotStatus) IsValid() bool {
	return s == SlotFree || s == SlotBooked
}

// Slot represents one bookable unit of the service calendar
type Slot struct {
	ID          int64
	Day         string // Weekday name, e.g. "Tuesday"
	Time        types.TimeString
	Status      SlotStatus
	VehicleID   string
	RiskLevel   string
	ServiceType string
	Capacity    int
	Used        int
	VehicleType string

	// StartsAt is known only right after generation and is never persisted
	StartsAt time.Time
}

// IsAvailable returns true if the slot can absorb one more booking
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotFree && s.Used < s.Capacity
}

// IsFull returns true if the slot capacity is exhausted
func (s *Slot) IsFull() bool {
	return s.Used >= s.Capacity
}

// Descriptor returns the human readable "<Day> <HH:MM>" label
func (s *Slot) Descriptor() string {
	return s.Day + " " + s.Time.String()
}

// Book applies one booking event to the slot
func (s *Slot) Book(details BookingDetails) {
	s.Status = SlotBooked
	s.VehicleID = details.VehicleID
	s.RiskLevel = details.RiskLevel
	s.ServiceType = details.ServiceType
	s.VehicleType = details.VehicleType
	s.Used++
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.Capacity) * 100
}
