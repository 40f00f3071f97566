package entities

import "fmt"

// PlantID represents a unique manufacturing plant identifier
type PlantID string

// Plant represents a manufacturing plant with a weekly capacity budget
type Plant struct {
	PlantID              PlantID
	CapacityHoursPerWeek float64
}

// NewPlant creates a validated Plant
func NewPlant(plantID PlantID, capacityHoursPerWeek float64) (*Plant, error) {
	if string(plantID) == "" {
		return nil, fmt.Errorf("plant id cannot be empty")
	}
	if capacityHoursPerWeek < 0 {
		return nil, fmt.Errorf("capacity cannot be negative, got %v hours", capacityHoursPerWeek)
	}

	return &Plant{
		PlantID:              plantID,
		CapacityHoursPerWeek: capacityHoursPerWeek,
	}, nil
}
