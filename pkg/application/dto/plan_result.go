package dto

import (
	"time"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// ModelSize describes the dimensions of an assembled model
type ModelSize struct {
	Variables   int
	Constraints int
}

// PlanResult contains the complete output of one optimization run.
// Schedule is nil unless Status is Optimal; callers branch on Status
// rather than on errors for infeasible and unbounded runs.
type PlanResult struct {
	Status         optimization.Status
	ObjectiveValue float64
	Schedule       *optimization.ProductionSchedule
	Demand         map[entities.MaterialID]float64
	ModelSize      ModelSize
	SolveTime      time.Duration
}

// IsOptimal reports whether the run produced a usable schedule
func (r *PlanResult) IsOptimal() bool {
	return r.Status == optimization.Optimal
}
