package entities

import "fmt"

// OrderLine represents a single sales order line demanding a material
type OrderLine struct {
	MaterialID MaterialID
	Quantity   float64
}

// NewOrderLine creates a validated OrderLine
func NewOrderLine(materialID MaterialID, quantity float64) (*OrderLine, error) {
	if string(materialID) == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %v", quantity)
	}

	return &OrderLine{
		MaterialID: materialID,
		Quantity:   quantity,
	}, nil
}
