package services

import (
	"context"
	"fmt"
	"time"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/dto"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/events"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// PlanningOptions configures one planning run. The zero value selects the
// zero-cost policy for uncosted pairs, the default extraction epsilon, no
// solve timeout, and no event recording.
type PlanningOptions struct {
	CostPolicy      optimization.CostPolicy
	ScheduleEpsilon float64
	SolveTimeout    time.Duration
	EventStore      events.EventStore
}

// PlanningService runs the full optimization pipeline: aggregate demand,
// build the model, solve, and extract the schedule. Each call operates on
// an immutable snapshot of the repositories and shares no state with other
// runs, so independent services may run in parallel.
type PlanningService struct {
	solver  optimization.Solver
	options PlanningOptions
}

// NewPlanningService creates a planning service with default options
func NewPlanningService(solver optimization.Solver) *PlanningService {
	return NewPlanningServiceWithOptions(solver, PlanningOptions{})
}

// NewPlanningServiceWithOptions creates a planning service with explicit options
func NewPlanningServiceWithOptions(solver optimization.Solver, options PlanningOptions) *PlanningService {
	if options.ScheduleEpsilon <= 0 {
		options.ScheduleEpsilon = optimization.DefaultScheduleEpsilon
	}
	return &PlanningService{solver: solver, options: options}
}

// PlanProduction performs one optimization run. Structural data problems
// fail before any solve attempt; infeasible and unbounded models come back
// as a PlanResult status with no schedule and a nil error.
func (s *PlanningService) PlanProduction(
	ctx context.Context,
	materialRepo repositories.MaterialRepository,
	plantRepo repositories.PlantRepository,
	orderRepo repositories.OrderRepository,
	costRepo repositories.CostRepository,
) (*dto.PlanResult, error) {
	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	s.record(runID, events.NewRunStartedEvent(runID, s.options.CostPolicy))

	// Step 1: Snapshot the input tables.
	materials, err := materialRepo.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to read materials: %w", err)
	}
	plants, err := plantRepo.GetAllPlants()
	if err != nil {
		return nil, fmt.Errorf("failed to read plants: %w", err)
	}
	orders, err := orderRepo.GetOrderLines()
	if err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	costs, err := costRepo.GetCostEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to read costs: %w", err)
	}
	s.record(runID, events.NewDataLoadedEvent(runID, len(materials), len(plants), len(orders), len(costs)))

	// Step 2: Reduce order lines to total demand per material.
	demand := optimization.AggregateDemand(orders)

	// Step 3: Assemble the model. Gaps in the master data stop the run here.
	builder := optimization.NewModelBuilderWithOptions(optimization.BuilderOptions{
		CostPolicy: s.options.CostPolicy,
	})
	model, err := builder.Build(materials, plants, demand, costs)
	if err != nil {
		return nil, fmt.Errorf("failed to build model: %w", err)
	}
	s.record(runID, events.NewModelBuiltEvent(runID, model))

	// Step 4: Solve, bounded by the configured timeout.
	solveCtx := ctx
	if s.options.SolveTimeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, s.options.SolveTimeout)
		defer cancel()
	}

	solveStart := time.Now()
	solution, err := s.solver.Solve(solveCtx, model)
	solveTime := time.Since(solveStart)
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}
	s.record(runID, events.NewSolveCompletedEvent(runID, solution, solveTime))

	result := &dto.PlanResult{
		Status: solution.Status,
		Demand: demand,
		ModelSize: dto.ModelSize{
			Variables:   model.NumVariables(),
			Constraints: model.NumConstraints(),
		},
		SolveTime: solveTime,
	}

	// Step 5: Extract the schedule, or report the status as-is.
	if !solution.IsOptimal() {
		s.record(runID, events.NewShortfallEvent(runID, solution.Status))
		return result, nil
	}

	schedule, err := optimization.ExtractSchedule(solution, materials, plants, s.options.ScheduleEpsilon)
	if err != nil {
		return nil, fmt.Errorf("failed to extract schedule: %w", err)
	}
	s.record(runID, events.NewScheduleExtractedEvent(runID, schedule))

	result.ObjectiveValue = solution.ObjectiveValue
	result.Schedule = schedule
	return result, nil
}

// record appends a run event when an event store is configured. Recording
// is observational and never fails the run.
func (s *PlanningService) record(runID string, event events.Event) {
	if s.options.EventStore == nil {
		return
	}
	_ = s.options.EventStore.AppendEvent(runID, event)
}
