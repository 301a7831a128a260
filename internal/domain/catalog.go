package domain

import "sort"

// Vehicle categories known to the service catalog
const (
	VehicleScooter = "Scooter"
	VehicleCar     = "Car"
	VehicleEV      = "EV"
	VehicleLCV     = "LCV"
)

// DefaultServiceDurationMinutes is used for (vehicle, service) pairs missing from the catalog
const DefaultServiceDurationMinutes = 60

// serviceCatalog vehicle category -> service name -> duration in minutes
var serviceCatalog = map[string]map[string]int{
	VehicleScooter: {
		"Minor Service": 45,
		"Engine Check":  60,
	},
	VehicleCar: {
		"General Service": 90,
		"Brake Check":     30,
		"Engine Check":    120,
		"Coolant Leak":    60,
	},
	VehicleEV: {
		"Battery Issue":   60,
		"Software Update": 30,
	},
	VehicleLCV: {
		"Major Service": 180,
	},
}

// vehicleCategories keeps a stable order for random selection
var vehicleCategories = []string{VehicleCar, VehicleScooter, VehicleEV, VehicleLCV}

// VehicleCategories returns the catalog categories in a stable order
func VehicleCategories() []string {
	out := make([]string, len(vehicleCategories))
	copy(out, vehicleCategories)
	return out
}

// ServicesFor returns the sorted service names valid for the category
func ServicesFor(vehicleType string) []string {
	services := serviceCatalog[vehicleType]
	out := make([]string, 0, len(services))
	for name := range services {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ServiceDuration returns the duration of the service in minutes
func ServiceDuration(vehicleType, serviceType string) int {
	if d, ok := serviceCatalog[vehicleType][serviceType]; ok {
		return d
	}
	return DefaultServiceDurationMinutes
}

// SlotsNeeded returns ceil(duration / granularity)
func SlotsNeeded(durationMinutes, slotMinutes int) int {
	if slotMinutes <= 0 {
		return 1
	}
	n := (durationMinutes + slotMinutes - 1) / slotMinutes
	if n < 1 {
		return 1
	}
	return n
}
