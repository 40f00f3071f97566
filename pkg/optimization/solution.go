package optimization

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// Status classifies the outcome of a solve. Infeasible and Unbounded are
// expected business outcomes and are reported here, never as errors.
type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

// String method for Status enum
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Solution holds the outcome of solving a Model. ObjectiveValue and Values
// are meaningful only when Status is Optimal.
type Solution struct {
	Status         Status
	ObjectiveValue float64
	Values         map[entities.PlantMaterial]float64
}

// IsOptimal reports whether the solve proved an optimal assignment
func (s *Solution) IsOptimal() bool {
	return s.Status == Optimal
}

// Value returns the solved quantity for a (plant, material) pair, or 0 if
// the pair is not part of the solution
func (s *Solution) Value(key entities.PlantMaterial) float64 {
	return s.Values[key]
}
