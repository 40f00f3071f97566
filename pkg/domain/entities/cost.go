package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostType represents the category of a cost entry
type CostType int

const (
	Production CostType = iota
	Freight
	Storage
)

// String method for CostType enum
func (c CostType) String() string {
	switch c {
	case Production:
		return "Production"
	case Freight:
		return "Freight"
	case Storage:
		return "Storage"
	default:
		return "Unknown"
	}
}

// PlantMaterial is the composite key identifying a (plant, material) pair.
// It is comparable and safe to use as a map key.
type PlantMaterial struct {
	PlantID    PlantID
	MaterialID MaterialID
}

// String method for PlantMaterial keys
func (k PlantMaterial) String() string {
	return fmt.Sprintf("%s/%s", k.PlantID, k.MaterialID)
}

// CostEntry represents one row of the cost table for a (plant, material) pair
type CostEntry struct {
	PlantID     PlantID
	MaterialID  MaterialID
	CostType    CostType
	CostPerUnit decimal.Decimal
}

// Key returns the composite (plant, material) key for this entry
func (c *CostEntry) Key() PlantMaterial {
	return PlantMaterial{PlantID: c.PlantID, MaterialID: c.MaterialID}
}

// NewCostEntry creates a validated CostEntry
func NewCostEntry(
	plantID PlantID,
	materialID MaterialID,
	costType CostType,
	costPerUnit decimal.Decimal,
) (*CostEntry, error) {
	if string(plantID) == "" {
		return nil, fmt.Errorf("plant id cannot be empty")
	}
	if string(materialID) == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if costPerUnit.IsNegative() {
		return nil, fmt.Errorf("cost per unit cannot be negative, got %s", costPerUnit)
	}

	return &CostEntry{
		PlantID:     plantID,
		MaterialID:  materialID,
		CostType:    costType,
		CostPerUnit: costPerUnit,
	}, nil
}
