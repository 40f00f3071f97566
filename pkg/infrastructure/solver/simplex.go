package solver

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// DefaultTolerance is the simplex pivot tolerance used when none is configured
const DefaultTolerance = 1e-7

// SimplexSolver solves assembled models with gonum's dense simplex method.
// The engine itself is uninterruptible: when the context expires the solve
// goroutine is abandoned and finishes in the background.
type SimplexSolver struct {
	tolerance float64
}

// NewSimplexSolver creates a solver with the default tolerance
func NewSimplexSolver() *SimplexSolver {
	return NewSimplexSolverWithTolerance(DefaultTolerance)
}

// NewSimplexSolverWithTolerance creates a solver with an explicit tolerance
func NewSimplexSolverWithTolerance(tolerance float64) *SimplexSolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &SimplexSolver{tolerance: tolerance}
}

// Verify interface compliance
var _ optimization.Solver = (*SimplexSolver)(nil)

type solveOutcome struct {
	objective float64
	values    []float64
	err       error
}

// Solve converts the model to standard form, runs the simplex method, and
// classifies the outcome. Infeasible and Unbounded come back as solution
// statuses; only engine failures and expired contexts are errors.
func (s *SimplexSolver) Solve(
	ctx context.Context,
	model *optimization.Model,
) (*optimization.Solution, error) {
	if err := ctx.Err(); err != nil {
		return &optimization.Solution{Status: optimization.NotSolved},
			&optimization.SolverError{Err: err}
	}

	numVars := model.NumVariables()
	numRows := model.NumConstraints()

	// An unconstrained model never reaches the engine: with non-negative
	// variables the minimum is all-zero unless some cost coefficient
	// rewards unbounded production.
	if numRows == 0 {
		return s.solveUnconstrained(model), nil
	}

	c, a, b := standardForm(model, numVars, numRows)

	outcomes := make(chan solveOutcome, 1)
	go func() {
		objective, values, err := lp.Simplex(c, a, b, s.tolerance, nil)
		outcomes <- solveOutcome{objective: objective, values: values, err: err}
	}()

	select {
	case <-ctx.Done():
		return &optimization.Solution{Status: optimization.NotSolved},
			&optimization.SolverError{Err: ctx.Err()}
	case outcome := <-outcomes:
		return s.interpret(model, outcome)
	}
}

// standardForm assembles minimize c'x subject to Ax = b, x >= 0. Model
// variables are already non-negative, so each constraint row needs only one
// slack (<=) or surplus (>=) column rather than a full general-form convert.
func standardForm(
	model *optimization.Model,
	numVars, numRows int,
) ([]float64, *mat.Dense, []float64) {
	numCols := numVars + numRows

	c := make([]float64, numCols)
	for _, term := range model.Objective() {
		c[term.Variable.Index()] += term.Coefficient
	}

	a := mat.NewDense(numRows, numCols, nil)
	b := make([]float64, numRows)
	for i, constraint := range model.Constraints() {
		for _, term := range constraint.Terms {
			column := term.Variable.Index()
			a.Set(i, column, a.At(i, column)+term.Coefficient)
		}
		if constraint.Sense == optimization.LessOrEqual {
			a.Set(i, numVars+i, 1)
		} else {
			a.Set(i, numVars+i, -1)
		}
		b[i] = constraint.RHS
	}

	return c, a, b
}

func (s *SimplexSolver) solveUnconstrained(model *optimization.Model) *optimization.Solution {
	for _, term := range model.Objective() {
		if term.Coefficient < 0 {
			return &optimization.Solution{Status: optimization.Unbounded}
		}
	}

	values := make(map[entities.PlantMaterial]float64, model.NumVariables())
	for _, variable := range model.Variables() {
		values[variable.Key] = 0
	}
	return &optimization.Solution{Status: optimization.Optimal, Values: values}
}

func (s *SimplexSolver) interpret(
	model *optimization.Model,
	outcome solveOutcome,
) (*optimization.Solution, error) {
	switch {
	case errors.Is(outcome.err, lp.ErrInfeasible):
		return &optimization.Solution{Status: optimization.Infeasible}, nil
	case errors.Is(outcome.err, lp.ErrUnbounded):
		return &optimization.Solution{Status: optimization.Unbounded}, nil
	case outcome.err != nil:
		return &optimization.Solution{Status: optimization.NotSolved},
			&optimization.SolverError{Err: outcome.err}
	}

	values := make(map[entities.PlantMaterial]float64, model.NumVariables())
	for _, variable := range model.Variables() {
		value := outcome.values[variable.Index()]
		// Clamp pivot noise so downstream consumers never see -1e-12.
		if value < 0 && value > -s.tolerance {
			value = 0
		}
		values[variable.Key] = value
	}

	return &optimization.Solution{
		Status:         optimization.Optimal,
		ObjectiveValue: outcome.objective,
		Values:         values,
	}, nil
}
