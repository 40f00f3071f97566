package optimization

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// DefaultScheduleEpsilon suppresses solver floating-point noise when
// reading assignment values out of a solution.
const DefaultScheduleEpsilon = 1e-6

// ScheduleLine is one produced material at one plant
type ScheduleLine struct {
	MaterialID  entities.MaterialID
	Description string
	Quantity    float64
}

// PlantSchedule lists what a single plant produces in the week
type PlantSchedule struct {
	PlantID       entities.PlantID
	Lines         []ScheduleLine
	TotalQuantity float64
	HoursUsed     float64
}

// ProductionSchedule is the per-plant production plan extracted from an
// optimal solution
type ProductionSchedule struct {
	Plants         []PlantSchedule
	ObjectiveValue float64
	TotalQuantity  float64
}

// ExtractSchedule turns an optimal solution into a per-plant schedule.
// Ordering follows plant then material listing order regardless of how the
// engine ordered its columns. Assignments at or below epsilon are dropped;
// a negative epsilon selects DefaultScheduleEpsilon. Non-optimal solutions
// yield a StatusError and no partial quantities.
func ExtractSchedule(
	solution *Solution,
	materials []*entities.Material,
	plants []*entities.Plant,
	epsilon float64,
) (*ProductionSchedule, error) {
	if solution == nil {
		return nil, &StatusError{Status: NotSolved}
	}
	if !solution.IsOptimal() {
		return nil, &StatusError{Status: solution.Status}
	}
	if epsilon < 0 {
		epsilon = DefaultScheduleEpsilon
	}

	schedule := &ProductionSchedule{
		Plants:         make([]PlantSchedule, 0, len(plants)),
		ObjectiveValue: solution.ObjectiveValue,
	}

	for _, plant := range plants {
		plantSchedule := PlantSchedule{PlantID: plant.PlantID}

		for _, material := range materials {
			quantity := solution.Value(entities.PlantMaterial{
				PlantID:    plant.PlantID,
				MaterialID: material.MaterialID,
			})
			if quantity <= epsilon {
				continue
			}

			plantSchedule.Lines = append(plantSchedule.Lines, ScheduleLine{
				MaterialID:  material.MaterialID,
				Description: material.Description,
				Quantity:    quantity,
			})
			plantSchedule.TotalQuantity += quantity
			plantSchedule.HoursUsed += quantity * material.ProductionTimeHours
		}

		schedule.Plants = append(schedule.Plants, plantSchedule)
		schedule.TotalQuantity += plantSchedule.TotalQuantity
	}

	return schedule, nil
}
