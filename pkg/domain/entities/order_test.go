package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderLine_Validation(t *testing.T) {
	validLine, err := NewOrderLine("MAT-100", 25)
	if err != nil {
		t.Fatalf("Expected valid order line creation to succeed: %v", err)
	}
	if validLine.Quantity != 25 {
		t.Errorf("Expected quantity 25, got %v", validLine.Quantity)
	}

	// Zero-quantity lines are tolerated; they simply contribute no demand
	zeroLine, err := NewOrderLine("MAT-100", 0)
	if err != nil {
		t.Fatalf("Expected zero-quantity line to be valid: %v", err)
	}
	if zeroLine.Quantity != 0 {
		t.Errorf("Expected quantity 0, got %v", zeroLine.Quantity)
	}

	testCases := []struct {
		name        string
		materialID  MaterialID
		quantity    float64
		expectError string
	}{
		{"empty material id", "", 5, "material id cannot be empty"},
		{"negative quantity", "MAT-100", -1, "quantity cannot be negative, got -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrderLine(tc.materialID, tc.quantity)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestCostEntry_Validation(t *testing.T) {
	validEntry, err := NewCostEntry("PLANT_EAST", "MAT-100", Production, decimal.NewFromFloat(5.25))
	if err != nil {
		t.Fatalf("Expected valid cost entry creation to succeed: %v", err)
	}
	if validEntry.Key() != (PlantMaterial{PlantID: "PLANT_EAST", MaterialID: "MAT-100"}) {
		t.Errorf("Expected key PLANT_EAST/MAT-100, got %s", validEntry.Key())
	}

	testCases := []struct {
		name        string
		plantID     PlantID
		materialID  MaterialID
		costPerUnit decimal.Decimal
		expectError string
	}{
		{"empty plant id", "", "MAT-100", decimal.NewFromInt(5), "plant id cannot be empty"},
		{"empty material id", "PLANT_EAST", "", decimal.NewFromInt(5), "material id cannot be empty"},
		{
			"negative cost",
			"PLANT_EAST",
			"MAT-100",
			decimal.NewFromFloat(-0.01),
			"cost per unit cannot be negative, got -0.01",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCostEntry(tc.plantID, tc.materialID, Production, tc.costPerUnit)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestCostType_String(t *testing.T) {
	cases := map[CostType]string{
		Production:   "Production",
		Freight:      "Freight",
		Storage:      "Storage",
		CostType(99): "Unknown",
	}

	for costType, expected := range cases {
		if costType.String() != expected {
			t.Errorf("Expected %s, got %s", expected, costType.String())
		}
	}
}

func TestPlantMaterial_MapKey(t *testing.T) {
	lookup := map[PlantMaterial]float64{
		{PlantID: "P1", MaterialID: "M1"}: 5.0,
		{PlantID: "P2", MaterialID: "M1"}: 6.0,
	}

	cost, ok := lookup[PlantMaterial{PlantID: "P1", MaterialID: "M1"}]
	if !ok {
		t.Fatal("Expected P1/M1 to be present in lookup")
	}
	if cost != 5.0 {
		t.Errorf("Expected cost 5.0, got %v", cost)
	}

	if _, ok := lookup[PlantMaterial{PlantID: "P1", MaterialID: "M2"}]; ok {
		t.Error("Expected P1/M2 to be absent from lookup")
	}

	if got := (PlantMaterial{PlantID: "P1", MaterialID: "M1"}).String(); got != "P1/M1" {
		t.Errorf("Expected key string P1/M1, got %s", got)
	}
}
