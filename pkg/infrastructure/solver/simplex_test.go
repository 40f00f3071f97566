package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

func key(plant, material string) entities.PlantMaterial {
	return entities.PlantMaterial{
		PlantID:    entities.PlantID(plant),
		MaterialID: entities.MaterialID(material),
	}
}

// twoPlantModel is the cheap-plant split scenario: M1 is cheaper at P1,
// M2 is cheaper at P2, both capacities are sufficient.
func twoPlantModel(t *testing.T) *optimization.Model {
	t.Helper()

	model := optimization.NewModel(4, 4)
	var variables []*optimization.Variable
	for _, k := range []entities.PlantMaterial{
		key("P1", "M1"), key("P1", "M2"), key("P2", "M1"), key("P2", "M2"),
	} {
		variable, err := model.AddVariable("Produce_"+k.String(), k)
		if err != nil {
			t.Fatalf("Failed to add variable: %v", err)
		}
		variables = append(variables, variable)
	}

	model.SetObjective([]optimization.Term{
		{Coefficient: 5, Variable: variables[0]},
		{Coefficient: 8, Variable: variables[1]},
		{Coefficient: 6, Variable: variables[2]},
		{Coefficient: 7, Variable: variables[3]},
	})

	mustAdd := func(name string, terms []optimization.Term, sense optimization.Sense, rhs float64) {
		if err := model.AddConstraint(name, terms, sense, rhs); err != nil {
			t.Fatalf("Failed to add constraint %s: %v", name, err)
		}
	}

	mustAdd("Demand_M1", []optimization.Term{
		{Coefficient: 1, Variable: variables[0]},
		{Coefficient: 1, Variable: variables[2]},
	}, optimization.GreaterOrEqual, 100)
	mustAdd("Demand_M2", []optimization.Term{
		{Coefficient: 1, Variable: variables[1]},
		{Coefficient: 1, Variable: variables[3]},
	}, optimization.GreaterOrEqual, 50)
	mustAdd("Capacity_P1", []optimization.Term{
		{Coefficient: 1, Variable: variables[0]},
		{Coefficient: 2, Variable: variables[1]},
	}, optimization.LessOrEqual, 1000)
	mustAdd("Capacity_P2", []optimization.Term{
		{Coefficient: 1, Variable: variables[2]},
		{Coefficient: 2, Variable: variables[3]},
	}, optimization.LessOrEqual, 500)

	return model
}

func TestSimplexSolver_Optimal(t *testing.T) {
	model := twoPlantModel(t)

	solution, err := NewSimplexSolver().Solve(context.Background(), model)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if solution.Status != optimization.Optimal {
		t.Fatalf("Expected Optimal, got %s", solution.Status)
	}
	if math.Abs(solution.ObjectiveValue-850) > 1e-6 {
		t.Errorf("Expected objective 850, got %v", solution.ObjectiveValue)
	}
	if math.Abs(solution.Value(key("P1", "M1"))-100) > 1e-6 {
		t.Errorf("Expected all M1 at P1, got %v", solution.Value(key("P1", "M1")))
	}
	if math.Abs(solution.Value(key("P2", "M2"))-50) > 1e-6 {
		t.Errorf("Expected all M2 at P2, got %v", solution.Value(key("P2", "M2")))
	}
}

func TestSimplexSolver_Infeasible(t *testing.T) {
	model := optimization.NewModel(1, 2)
	variable, err := model.AddVariable("Produce_P1_M1", key("P1", "M1"))
	if err != nil {
		t.Fatalf("Failed to add variable: %v", err)
	}

	model.SetObjective([]optimization.Term{{Coefficient: 5, Variable: variable}})

	terms := []optimization.Term{{Coefficient: 1, Variable: variable}}
	if err := model.AddConstraint("Demand_M1", terms, optimization.GreaterOrEqual, 100); err != nil {
		t.Fatalf("Failed to add demand constraint: %v", err)
	}
	hourTerms := []optimization.Term{{Coefficient: 2, Variable: variable}}
	if err := model.AddConstraint("Capacity_P1", hourTerms, optimization.LessOrEqual, 40); err != nil {
		t.Fatalf("Failed to add capacity constraint: %v", err)
	}

	solution, err := NewSimplexSolver().Solve(context.Background(), model)
	if err != nil {
		t.Fatalf("Infeasibility must not surface as an error: %v", err)
	}
	if solution.Status != optimization.Infeasible {
		t.Errorf("Expected Infeasible, got %s", solution.Status)
	}
	if len(solution.Values) != 0 {
		t.Errorf("Expected no assignments on an infeasible solution, got %d", len(solution.Values))
	}
}

func TestSimplexSolver_Unbounded(t *testing.T) {
	model := optimization.NewModel(1, 1)
	variable, err := model.AddVariable("Produce_P1_M1", key("P1", "M1"))
	if err != nil {
		t.Fatalf("Failed to add variable: %v", err)
	}

	// A negative coefficient rewards unlimited production.
	model.SetObjective([]optimization.Term{{Coefficient: -1, Variable: variable}})
	terms := []optimization.Term{{Coefficient: 1, Variable: variable}}
	if err := model.AddConstraint("Demand_M1", terms, optimization.GreaterOrEqual, 1); err != nil {
		t.Fatalf("Failed to add constraint: %v", err)
	}

	solution, err := NewSimplexSolver().Solve(context.Background(), model)
	if err != nil {
		t.Fatalf("Unboundedness must not surface as an error: %v", err)
	}
	if solution.Status != optimization.Unbounded {
		t.Errorf("Expected Unbounded, got %s", solution.Status)
	}
}

func TestSimplexSolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solution, err := NewSimplexSolver().Solve(ctx, twoPlantModel(t))
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}

	var solverErr *optimization.SolverError
	if !errors.As(err, &solverErr) {
		t.Errorf("Expected SolverError, got %T: %v", err, err)
	}
	if solution.Status != optimization.NotSolved {
		t.Errorf("Expected NotSolved, got %s", solution.Status)
	}
}

func TestSimplexSolver_UnconstrainedModel(t *testing.T) {
	model := optimization.NewModel(1, 0)
	variable, err := model.AddVariable("Produce_P1_M1", key("P1", "M1"))
	if err != nil {
		t.Fatalf("Failed to add variable: %v", err)
	}
	model.SetObjective([]optimization.Term{{Coefficient: 5, Variable: variable}})

	solution, err := NewSimplexSolver().Solve(context.Background(), model)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Status != optimization.Optimal {
		t.Fatalf("Expected Optimal, got %s", solution.Status)
	}
	if solution.Value(key("P1", "M1")) != 0 {
		t.Errorf("Expected zero production without demand, got %v", solution.Value(key("P1", "M1")))
	}
}
