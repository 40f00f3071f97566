package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialID represents a unique material identifier
type MaterialID string

// Material represents a producible material from the material master
type Material struct {
	MaterialID          MaterialID
	Description         string
	UnitCost            decimal.Decimal
	ProductionTimeHours float64
}

// NewMaterial creates a validated Material
func NewMaterial(
	materialID MaterialID,
	description string,
	unitCost decimal.Decimal,
	productionTimeHours float64,
) (*Material, error) {
	if string(materialID) == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if productionTimeHours <= 0 {
		return nil, fmt.Errorf("production time must be positive, got %v hours", productionTimeHours)
	}

	return &Material{
		MaterialID:          materialID,
		Description:         description,
		UnitCost:            unitCost,
		ProductionTimeHours: productionTimeHours,
	}, nil
}
