package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// Loader handles loading scheduling master data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterials loads the material master from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]*entities.Material, error) {
	records, err := readTable(filename, "materials")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"material_id", "description", "unit_cost", "production_time_hours"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("materials CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var materials []*entities.Material
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("materials CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		material, err := parseMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}

		materials = append(materials, material)
	}

	return materials, nil
}

// LoadPlants loads the plant master from a CSV file
func (l *Loader) LoadPlants(filename string) ([]*entities.Plant, error) {
	records, err := readTable(filename, "plants")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_id", "capacity_hours_per_week"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("plants CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var plants []*entities.Plant
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("plants CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		capacity, err := parseFloat("capacity_hours_per_week", record[1])
		if err != nil {
			return nil, fmt.Errorf("plants CSV row %d: %w", i+2, err)
		}

		plant, err := entities.NewPlant(entities.PlantID(record[0]), capacity)
		if err != nil {
			return nil, fmt.Errorf("plants CSV row %d: %w", i+2, err)
		}

		plants = append(plants, plant)
	}

	return plants, nil
}

// LoadOrderLines loads open order lines from a CSV file
func (l *Loader) LoadOrderLines(filename string) ([]*entities.OrderLine, error) {
	records, err := readTable(filename, "orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"material_id", "quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var lines []*entities.OrderLine
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := parseFloat("quantity", record[1])
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		line, err := entities.NewOrderLine(entities.MaterialID(record[0]), quantity)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// LoadCostEntries loads the plant/material cost table from a CSV file
func (l *Loader) LoadCostEntries(filename string) ([]*entities.CostEntry, error) {
	records, err := readTable(filename, "costs")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_id", "material_id", "cost_type", "cost_per_unit"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("costs CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var entries []*entities.CostEntry
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("costs CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		entry, err := parseCostEntry(record)
		if err != nil {
			return nil, fmt.Errorf("costs CSV row %d: %w", i+2, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadInventory loads on-hand inventory records from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryRecord, error) {
	records, err := readTable(filename, "inventory")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"material_id", "location", "quantity_on_hand"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var inventory []*entities.InventoryRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		onHand, err := parseFloat("quantity_on_hand", record[2])
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		inventoryRecord, err := entities.NewInventoryRecord(entities.MaterialID(record[0]), record[1], onHand)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		inventory = append(inventory, inventoryRecord)
	}

	return inventory, nil
}

// LoadProductionHistory loads historical production postings from a CSV file
func (l *Loader) LoadProductionHistory(filename string) ([]*entities.ProductionRecord, error) {
	records, err := readTable(filename, "production history")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_id", "material_id", "quantity", "produced_on"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("production history CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var history []*entities.ProductionRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("production history CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := parseFloat("quantity", record[2])
		if err != nil {
			return nil, fmt.Errorf("production history CSV row %d: %w", i+2, err)
		}

		producedOn, err := time.Parse("2006-01-02", record[3])
		if err != nil {
			return nil, fmt.Errorf("production history CSV row %d: invalid produced_on %s (expected YYYY-MM-DD)", i+2, record[3])
		}

		productionRecord, err := entities.NewProductionRecord(
			entities.PlantID(record[0]),
			entities.MaterialID(record[1]),
			quantity,
			producedOn,
		)
		if err != nil {
			return nil, fmt.Errorf("production history CSV row %d: %w", i+2, err)
		}

		history = append(history, productionRecord)
	}

	return history, nil
}

// Helper functions for parsing CSV records

func readTable(filename, table string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", table)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseMaterial(record []string) (*entities.Material, error) {
	unitCost, err := decimal.NewFromString(record[2])
	if err != nil {
		return nil, &optimization.DataError{Detail: fmt.Sprintf("invalid unit_cost: %s", record[2])}
	}

	productionTime, err := parseFloat("production_time_hours", record[3])
	if err != nil {
		return nil, err
	}

	return entities.NewMaterial(entities.MaterialID(record[0]), record[1], unitCost, productionTime)
}

func parseCostEntry(record []string) (*entities.CostEntry, error) {
	costType, err := parseCostType(record[2])
	if err != nil {
		return nil, err
	}

	costPerUnit, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, &optimization.DataError{Detail: fmt.Sprintf("invalid cost_per_unit: %s", record[3])}
	}

	return entities.NewCostEntry(
		entities.PlantID(record[0]),
		entities.MaterialID(record[1]),
		costType,
		costPerUnit,
	)
}

func parseCostType(value string) (entities.CostType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "production":
		return entities.Production, nil
	case "freight":
		return entities.Freight, nil
	case "storage":
		return entities.Storage, nil
	default:
		return 0, &optimization.DataError{Detail: fmt.Sprintf("invalid cost_type: %s", value)}
	}
}

func parseFloat(field, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &optimization.DataError{Detail: fmt.Sprintf("invalid %s: %s", field, value)}
	}
	return parsed, nil
}
