package optimization

import (
	"testing"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

func TestAggregateDemand(t *testing.T) {
	orders := []*entities.OrderLine{
		{MaterialID: "M1", Quantity: 60},
		{MaterialID: "M2", Quantity: 50},
		{MaterialID: "M1", Quantity: 40},
	}

	demand := AggregateDemand(orders)

	if len(demand) != 2 {
		t.Fatalf("Expected 2 demanded materials, got %d", len(demand))
	}
	if demand["M1"] != 100 {
		t.Errorf("Expected M1 demand 100, got %v", demand["M1"])
	}
	if demand["M2"] != 50 {
		t.Errorf("Expected M2 demand 50, got %v", demand["M2"])
	}
	if _, present := demand["M3"]; present {
		t.Error("Expected M3 to be absent from aggregated demand")
	}
}

func TestAggregateDemand_ZeroQuantityLine(t *testing.T) {
	orders := []*entities.OrderLine{
		{MaterialID: "M1", Quantity: 0},
	}

	demand := AggregateDemand(orders)

	// A zero-quantity line still marks the material as ordered
	total, present := demand["M1"]
	if !present {
		t.Fatal("Expected M1 to be present in aggregated demand")
	}
	if total != 0 {
		t.Errorf("Expected M1 demand 0, got %v", total)
	}
}

func TestAggregateDemand_Empty(t *testing.T) {
	demand := AggregateDemand(nil)
	if len(demand) != 0 {
		t.Errorf("Expected empty demand mapping, got %d entries", len(demand))
	}
}
