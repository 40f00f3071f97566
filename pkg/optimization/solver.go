package optimization

import "context"

// Solver is the boundary to an external LP engine. Implementations receive
// an assembled Model and report the outcome as a Solution: infeasibility
// and unboundedness are solution statuses, never errors. A returned error
// means the engine itself failed or the context expired, and is always
// accompanied by a NotSolved solution.
type Solver interface {
	Solve(ctx context.Context, model *Model) (*Solution, error)
}
