package optimization

import (
	"fmt"
	"math"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// CostPolicy controls how (plant, material) pairs without a Production
// cost entry participate in the model.
type CostPolicy int

const (
	// CostPolicyZero keeps uncosted pairs producible at zero objective
	// cost: a missing cost row costs nothing, so demand may be routed
	// through uncosted plants.
	CostPolicyZero CostPolicy = iota
	// CostPolicyForbid pins uncosted pairs to zero production, so demand
	// must be met entirely by pairs with an explicit Production cost.
	CostPolicyForbid
)

// String method for CostPolicy enum
func (p CostPolicy) String() string {
	switch p {
	case CostPolicyZero:
		return "zero"
	case CostPolicyForbid:
		return "forbid"
	default:
		return "Unknown"
	}
}

// BuilderOptions configures model construction
type BuilderOptions struct {
	CostPolicy CostPolicy
}

// ModelBuilder deterministically assembles the weekly scheduling LP from
// master data and aggregated demand.
type ModelBuilder struct {
	options BuilderOptions
}

// NewModelBuilder creates a builder with default options
func NewModelBuilder() *ModelBuilder {
	return NewModelBuilderWithOptions(BuilderOptions{})
}

// NewModelBuilderWithOptions creates a builder with explicit options
func NewModelBuilderWithOptions(options BuilderOptions) *ModelBuilder {
	return &ModelBuilder{options: options}
}

// Build produces the LP for one planning run: one variable per
// plant×material pair, a demand floor for every material with open orders,
// and an hours budget for every plant. Structural gaps in the master data
// fail here, before any solve attempt.
func (b *ModelBuilder) Build(
	materials []*entities.Material,
	plants []*entities.Plant,
	demand map[entities.MaterialID]float64,
	costs []*entities.CostEntry,
) (*Model, error) {
	// Step 1: Index master data and fail fast on gaps.
	materialByID := make(map[entities.MaterialID]*entities.Material, len(materials))
	for _, material := range materials {
		if _, exists := materialByID[material.MaterialID]; exists {
			return nil, &DataError{
				Detail: fmt.Sprintf("duplicate material id %s", material.MaterialID),
			}
		}
		if material.ProductionTimeHours <= 0 || math.IsNaN(material.ProductionTimeHours) {
			return nil, &MissingDataError{
				Field:    "production_time_hours",
				EntityID: string(material.MaterialID),
			}
		}
		materialByID[material.MaterialID] = material
	}

	plantIDs := make(map[entities.PlantID]struct{}, len(plants))
	for _, plant := range plants {
		if _, exists := plantIDs[plant.PlantID]; exists {
			return nil, &DataError{Detail: fmt.Sprintf("duplicate plant id %s", plant.PlantID)}
		}
		if plant.CapacityHoursPerWeek < 0 || math.IsNaN(plant.CapacityHoursPerWeek) {
			return nil, &MissingDataError{
				Field:    "capacity_hours_per_week",
				EntityID: string(plant.PlantID),
			}
		}
		plantIDs[plant.PlantID] = struct{}{}
	}

	for materialID := range demand {
		if _, exists := materialByID[materialID]; !exists {
			return nil, &MissingDataError{
				Field:    "material master entry",
				EntityID: string(materialID),
			}
		}
	}

	// Step 2: One decision variable per plant×material pair, plant listing
	// order then material listing order.
	model := NewModel(len(plants)*len(materials), len(plants)+len(demand))
	for _, plant := range plants {
		for _, material := range materials {
			key := entities.PlantMaterial{PlantID: plant.PlantID, MaterialID: material.MaterialID}
			name := fmt.Sprintf("Produce_%s_%s", plant.PlantID, material.MaterialID)
			if _, err := model.AddVariable(name, key); err != nil {
				return nil, err
			}
		}
	}

	// Step 3: Sparse Production cost lookup; other cost types are carried
	// in the table but never priced.
	productionCosts := make(map[entities.PlantMaterial]float64, len(costs))
	for _, entry := range costs {
		if entry.CostType != entities.Production {
			continue
		}
		key := entry.Key()
		if _, exists := productionCosts[key]; exists {
			return nil, &DataError{
				Detail: fmt.Sprintf("conflicting production cost entries for %s", key),
			}
		}
		productionCosts[key] = entry.CostPerUnit.InexactFloat64()
	}

	// Step 4: Objective covers only costed pairs. The cost policy decides
	// what happens to the rest.
	var objective []Term
	for _, plant := range plants {
		for _, material := range materials {
			key := entities.PlantMaterial{PlantID: plant.PlantID, MaterialID: material.MaterialID}
			variable, _ := model.Variable(key)

			cost, costed := productionCosts[key]
			if costed {
				objective = append(objective, Term{Coefficient: cost, Variable: variable})
				continue
			}
			if b.options.CostPolicy == CostPolicyForbid {
				name := fmt.Sprintf("Forbid_%s_%s", plant.PlantID, material.MaterialID)
				terms := []Term{{Coefficient: 1, Variable: variable}}
				if err := model.AddConstraint(name, terms, LessOrEqual, 0); err != nil {
					return nil, err
				}
			}
		}
	}
	model.SetObjective(objective)

	// Step 5: Demand floors, material listing order.
	for _, material := range materials {
		total, open := demand[material.MaterialID]
		if !open {
			continue
		}

		terms := make([]Term, 0, len(plants))
		for _, plant := range plants {
			variable, _ := model.Variable(entities.PlantMaterial{
				PlantID:    plant.PlantID,
				MaterialID: material.MaterialID,
			})
			terms = append(terms, Term{Coefficient: 1, Variable: variable})
		}

		name := fmt.Sprintf("Demand_%s", material.MaterialID)
		if err := model.AddConstraint(name, terms, GreaterOrEqual, total); err != nil {
			return nil, err
		}
	}

	// Step 6: Hours budget for every plant, including idle ones.
	for _, plant := range plants {
		terms := make([]Term, 0, len(materials))
		for _, material := range materials {
			variable, _ := model.Variable(entities.PlantMaterial{
				PlantID:    plant.PlantID,
				MaterialID: material.MaterialID,
			})
			terms = append(terms, Term{
				Coefficient: material.ProductionTimeHours,
				Variable:    variable,
			})
		}

		name := fmt.Sprintf("Capacity_%s", plant.PlantID)
		if err := model.AddConstraint(name, terms, LessOrEqual, plant.CapacityHoursPerWeek); err != nil {
			return nil, err
		}
	}

	return model, nil
}
