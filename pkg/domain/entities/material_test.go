package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMaterial_Validation(t *testing.T) {
	validMaterial, err := NewMaterial("MAT-100", "Steel Bracket", decimal.NewFromFloat(12.50), 1.5)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	if validMaterial.ProductionTimeHours != 1.5 {
		t.Errorf("Expected production time 1.5, got %v", validMaterial.ProductionTimeHours)
	}
	if !validMaterial.UnitCost.Equal(decimal.NewFromFloat(12.50)) {
		t.Errorf("Expected unit cost 12.5, got %s", validMaterial.UnitCost)
	}

	testCases := []struct {
		name           string
		materialID     MaterialID
		unitCost       decimal.Decimal
		productionTime float64
		expectError    string
	}{
		{"empty material id", "", decimal.NewFromInt(10), 1.0, "material id cannot be empty"},
		{
			"negative unit cost",
			"MAT-100",
			decimal.NewFromInt(-5),
			1.0,
			"unit cost cannot be negative, got -5",
		},
		{
			"zero production time",
			"MAT-100",
			decimal.NewFromInt(10),
			0,
			"production time must be positive, got 0 hours",
		},
		{
			"negative production time",
			"MAT-100",
			decimal.NewFromInt(10),
			-2.5,
			"production time must be positive, got -2.5 hours",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMaterial(tc.materialID, "desc", tc.unitCost, tc.productionTime)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestPlant_Validation(t *testing.T) {
	validPlant, err := NewPlant("PLANT_EAST", 1000)
	if err != nil {
		t.Fatalf("Expected valid plant creation to succeed: %v", err)
	}
	if validPlant.CapacityHoursPerWeek != 1000 {
		t.Errorf("Expected capacity 1000, got %v", validPlant.CapacityHoursPerWeek)
	}

	// Zero capacity is a legal plant that simply cannot produce
	zeroPlant, err := NewPlant("PLANT_IDLE", 0)
	if err != nil {
		t.Fatalf("Expected zero-capacity plant to be valid: %v", err)
	}
	if zeroPlant.CapacityHoursPerWeek != 0 {
		t.Errorf("Expected capacity 0, got %v", zeroPlant.CapacityHoursPerWeek)
	}

	testCases := []struct {
		name        string
		plantID     PlantID
		capacity    float64
		expectError string
	}{
		{"empty plant id", "", 100, "plant id cannot be empty"},
		{"negative capacity", "PLANT_EAST", -10, "capacity cannot be negative, got -10 hours"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlant(tc.plantID, tc.capacity)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}
