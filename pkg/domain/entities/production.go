package entities

import (
	"fmt"
	"time"
)

// ProductionRecord represents one historical production posting at a plant
type ProductionRecord struct {
	PlantID    PlantID
	MaterialID MaterialID
	Quantity   float64
	ProducedOn time.Time
}

// NewProductionRecord creates a validated ProductionRecord
func NewProductionRecord(
	plantID PlantID,
	materialID MaterialID,
	quantity float64,
	producedOn time.Time,
) (*ProductionRecord, error) {
	if string(plantID) == "" {
		return nil, fmt.Errorf("plant id cannot be empty")
	}
	if string(materialID) == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %v", quantity)
	}

	return &ProductionRecord{
		PlantID:    plantID,
		MaterialID: materialID,
		Quantity:   quantity,
		ProducedOn: producedOn,
	}, nil
}
