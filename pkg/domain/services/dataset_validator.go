package services

import (
	"fmt"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// DatasetValidator checks referential integrity across the input tables
// before a run. Structural problems that would corrupt the model are
// errors; gaps the optimizer tolerates are warnings.
type DatasetValidator struct{}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator() *DatasetValidator {
	return &DatasetValidator{}
}

// ValidationResult contains the results of dataset validation
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the dataset can be optimized
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks one input snapshot. Duplicate master ids and orders for
// unknown materials are errors. Cost rows for unknown plants or materials
// and materials no plant can price are warnings: the model builder
// tolerates both, at the price of an unpriced or unused pair.
func (v *DatasetValidator) Validate(
	materials []*entities.Material,
	plants []*entities.Plant,
	orders []*entities.OrderLine,
	costs []*entities.CostEntry,
) *ValidationResult {
	result := &ValidationResult{}

	materialIDs := make(map[entities.MaterialID]struct{}, len(materials))
	for _, material := range materials {
		if _, exists := materialIDs[material.MaterialID]; exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate material id %s", material.MaterialID))
			continue
		}
		materialIDs[material.MaterialID] = struct{}{}

		if material.Description == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("material %s has no description", material.MaterialID))
		}
	}

	plantIDs := make(map[entities.PlantID]struct{}, len(plants))
	for _, plant := range plants {
		if _, exists := plantIDs[plant.PlantID]; exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate plant id %s", plant.PlantID))
			continue
		}
		plantIDs[plant.PlantID] = struct{}{}
	}

	for _, line := range orders {
		if _, exists := materialIDs[line.MaterialID]; !exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order references unknown material %s", line.MaterialID))
		}
	}

	costedMaterials := make(map[entities.MaterialID]struct{})
	seenPairs := make(map[entities.PlantMaterial]struct{}, len(costs))
	for _, entry := range costs {
		if _, exists := plantIDs[entry.PlantID]; !exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("cost row references unknown plant %s", entry.PlantID))
		}
		if _, exists := materialIDs[entry.MaterialID]; !exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("cost row references unknown material %s", entry.MaterialID))
		}

		if entry.CostType != entities.Production {
			continue
		}
		key := entry.Key()
		if _, exists := seenPairs[key]; exists {
			result.Errors = append(result.Errors,
				fmt.Sprintf("conflicting production cost entries for %s", key))
		}
		seenPairs[key] = struct{}{}
		costedMaterials[entry.MaterialID] = struct{}{}
	}

	for _, material := range materials {
		if _, exists := costedMaterials[material.MaterialID]; !exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("material %s has no production cost at any plant", material.MaterialID))
		}
	}

	return result
}
