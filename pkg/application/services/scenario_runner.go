package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/dto"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// Scenario is one self-contained optimization run for comparison: its own
// repositories and its own planning options. Scenarios must not share
// mutable repositories.
type Scenario struct {
	Name         string
	MaterialRepo repositories.MaterialRepository
	PlantRepo    repositories.PlantRepository
	OrderRepo    repositories.OrderRepository
	CostRepo     repositories.CostRepository
	Options      PlanningOptions
}

// ScenarioResult pairs a scenario name with its plan
type ScenarioResult struct {
	Name   string
	Result *dto.PlanResult
}

// SolverFactory builds a fresh solver per run so concurrent scenarios never
// share engine state
type SolverFactory func() optimization.Solver

// ScenarioRunner executes independent scenarios in parallel
type ScenarioRunner struct {
	newSolver SolverFactory
}

// NewScenarioRunner creates a runner backed by the given solver factory
func NewScenarioRunner(newSolver SolverFactory) *ScenarioRunner {
	return &ScenarioRunner{newSolver: newSolver}
}

// RunAll plans every scenario concurrently and returns results in scenario
// order. The first structural failure cancels the remaining runs;
// infeasible or unbounded scenarios are results, not failures.
func (r *ScenarioRunner) RunAll(ctx context.Context, scenarios []Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, len(scenarios))

	group, ctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		i, scenario := i, scenario
		group.Go(func() error {
			service := NewPlanningServiceWithOptions(r.newSolver(), scenario.Options)
			result, err := service.PlanProduction(
				ctx,
				scenario.MaterialRepo,
				scenario.PlantRepo,
				scenario.OrderRepo,
				scenario.CostRepo,
			)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
			results[i] = ScenarioResult{Name: scenario.Name, Result: result}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
