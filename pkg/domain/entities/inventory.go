package entities

import "fmt"

// InventoryRecord represents on-hand stock of a material at a storage location
type InventoryRecord struct {
	MaterialID     MaterialID
	Location       string
	QuantityOnHand float64
}

// NewInventoryRecord creates a validated InventoryRecord
func NewInventoryRecord(
	materialID MaterialID,
	location string,
	quantityOnHand float64,
) (*InventoryRecord, error) {
	if string(materialID) == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if location == "" {
		return nil, fmt.Errorf("location cannot be empty")
	}
	if quantityOnHand < 0 {
		return nil, fmt.Errorf("quantity on hand cannot be negative, got %v", quantityOnHand)
	}

	return &InventoryRecord{
		MaterialID:     materialID,
		Location:       location,
		QuantityOnHand: quantityOnHand,
	}, nil
}
