package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/dto"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/events"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/solver"
	testhelpers "github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/testing"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

const tolerance = 1e-6

func planDataset(
	t *testing.T,
	dataset *testhelpers.Dataset,
	options PlanningOptions,
) *PlanResultForTest {
	t.Helper()

	materialRepo, plantRepo, orderRepo, costRepo := dataset.Repositories()
	service := NewPlanningServiceWithOptions(solver.NewSimplexSolver(), options)

	result, err := service.PlanProduction(context.Background(), materialRepo, plantRepo, orderRepo, costRepo)
	if err != nil {
		t.Fatalf("PlanProduction failed: %v", err)
	}
	return &PlanResultForTest{result}
}

// PlanResultForTest adds assertion helpers over a plan result
type PlanResultForTest struct {
	*dto.PlanResult
}

func (r *PlanResultForTest) quantityAt(plant, material string) float64 {
	for _, plantSchedule := range r.Schedule.Plants {
		if plantSchedule.PlantID != entities.PlantID(plant) {
			continue
		}
		for _, line := range plantSchedule.Lines {
			if line.MaterialID == entities.MaterialID(material) {
				return line.Quantity
			}
		}
	}
	return 0
}

func TestPlanProduction_TwoPlantSplit(t *testing.T) {
	result := planDataset(t, testhelpers.BuildTwoPlantDataset(), PlanningOptions{})

	if !result.IsOptimal() {
		t.Fatalf("Expected Optimal, got %s", result.Status)
	}
	if math.Abs(result.ObjectiveValue-850) > tolerance {
		t.Errorf("Expected objective 850, got %v", result.ObjectiveValue)
	}

	// M1 is cheaper at P1, M2 at P2, and capacity allows the clean split.
	if qty := result.quantityAt("P1", "M1"); math.Abs(qty-100) > tolerance {
		t.Errorf("Expected 100 units of M1 at P1, got %v", qty)
	}
	if qty := result.quantityAt("P2", "M2"); math.Abs(qty-50) > tolerance {
		t.Errorf("Expected 50 units of M2 at P2, got %v", qty)
	}

	// Order lines for M1 (60 + 40) aggregate to one demand figure.
	if demand := result.Demand["M1"]; demand != 100 {
		t.Errorf("Expected aggregated demand 100 for M1, got %v", demand)
	}

	// 2 plants x 2 materials, 2 demand rows + 2 capacity rows.
	if result.ModelSize.Variables != 4 || result.ModelSize.Constraints != 4 {
		t.Errorf("Unexpected model size: %+v", result.ModelSize)
	}
}

func TestPlanProduction_DemandExceedsCapacity(t *testing.T) {
	result := planDataset(t, testhelpers.BuildOverloadedDataset(), PlanningOptions{})

	if result.Status != optimization.Infeasible {
		t.Fatalf("Expected Infeasible, got %s", result.Status)
	}
	if result.Schedule != nil {
		t.Error("Expected no schedule for an infeasible run")
	}
	if result.ObjectiveValue != 0 {
		t.Errorf("Expected no objective for an infeasible run, got %v", result.ObjectiveValue)
	}
}

func TestPlanProduction_UncostedMaterial(t *testing.T) {
	result := planDataset(t, testhelpers.BuildUncostedMaterialDataset(), PlanningOptions{})

	if !result.IsOptimal() {
		t.Fatalf("Expected Optimal, got %s", result.Status)
	}

	// M3 carries no production cost anywhere, so the objective is unchanged
	// while its demand is still fully produced.
	if math.Abs(result.ObjectiveValue-850) > tolerance {
		t.Errorf("Expected objective 850 with free M3, got %v", result.ObjectiveValue)
	}

	produced := result.quantityAt("P1", "M3") + result.quantityAt("P2", "M3")
	if math.Abs(produced-20) > tolerance {
		t.Errorf("Expected 20 units of M3 produced in total, got %v", produced)
	}
}

func TestPlanProduction_ForbidUncostedPairs(t *testing.T) {
	// Under the forbid policy the uncosted material cannot be produced
	// anywhere, so its demand makes the model infeasible.
	result := planDataset(t, testhelpers.BuildUncostedMaterialDataset(), PlanningOptions{
		CostPolicy: optimization.CostPolicyForbid,
	})

	if result.Status != optimization.Infeasible {
		t.Fatalf("Expected Infeasible under forbid policy, got %s", result.Status)
	}
}

func TestPlanProduction_Deterministic(t *testing.T) {
	first := planDataset(t, testhelpers.BuildTwoPlantDataset(), PlanningOptions{})
	second := planDataset(t, testhelpers.BuildTwoPlantDataset(), PlanningOptions{})

	if first.ObjectiveValue != second.ObjectiveValue {
		t.Errorf("Objective differs across identical runs: %v vs %v",
			first.ObjectiveValue, second.ObjectiveValue)
	}

	if len(first.Schedule.Plants) != len(second.Schedule.Plants) {
		t.Fatal("Plant count differs across identical runs")
	}
	for i := range first.Schedule.Plants {
		if first.Schedule.Plants[i].PlantID != second.Schedule.Plants[i].PlantID {
			t.Errorf("Plant ordering differs at position %d", i)
		}
		if len(first.Schedule.Plants[i].Lines) != len(second.Schedule.Plants[i].Lines) {
			t.Errorf("Line count differs for plant %s", first.Schedule.Plants[i].PlantID)
		}
	}
}

func TestPlanProduction_CapacityRespected(t *testing.T) {
	dataset := testhelpers.BuildUncostedMaterialDataset()
	result := planDataset(t, dataset, PlanningOptions{})

	timeByMaterial := make(map[entities.MaterialID]float64)
	for _, material := range dataset.Materials {
		timeByMaterial[material.MaterialID] = material.ProductionTimeHours
	}

	for _, plant := range dataset.Plants {
		var hoursUsed float64
		for _, plantSchedule := range result.Schedule.Plants {
			if plantSchedule.PlantID != plant.PlantID {
				continue
			}
			for _, line := range plantSchedule.Lines {
				hoursUsed += line.Quantity * timeByMaterial[line.MaterialID]
			}
		}
		if hoursUsed > plant.CapacityHoursPerWeek+tolerance {
			t.Errorf("Plant %s over capacity: %v > %v",
				plant.PlantID, hoursUsed, plant.CapacityHoursPerWeek)
		}
	}
}

func TestPlanProduction_CancelledContext(t *testing.T) {
	materialRepo, plantRepo, orderRepo, costRepo := testhelpers.BuildTwoPlantDataset().Repositories()
	service := NewPlanningService(solver.NewSimplexSolver())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.PlanProduction(ctx, materialRepo, plantRepo, orderRepo, costRepo)
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}

	var solverErr *optimization.SolverError
	if !errors.As(err, &solverErr) {
		t.Errorf("Expected SolverError, got %T: %v", err, err)
	}
}

func TestPlanProduction_RecordsRunEvents(t *testing.T) {
	store := events.NewInMemoryEventStore()
	materialRepo, plantRepo, orderRepo, costRepo := testhelpers.BuildTwoPlantDataset().Repositories()
	service := NewPlanningServiceWithOptions(solver.NewSimplexSolver(), PlanningOptions{
		EventStore: store,
	})

	if _, err := service.PlanProduction(context.Background(), materialRepo, plantRepo, orderRepo, costRepo); err != nil {
		t.Fatalf("PlanProduction failed: %v", err)
	}

	recorded, err := store.ReadAllEvents(0)
	if err != nil {
		t.Fatalf("ReadAllEvents failed: %v", err)
	}

	wantOrder := []string{
		events.RunStartedEvent,
		events.DataLoadedEvent,
		events.ModelBuiltEvent,
		events.SolveCompletedEvent,
		events.ScheduleExtractedEvent,
	}
	if len(recorded) != len(wantOrder) {
		t.Fatalf("Expected %d events, got %d", len(wantOrder), len(recorded))
	}
	for i, eventType := range wantOrder {
		if recorded[i].Type() != eventType {
			t.Errorf("Event %d: expected %s, got %s", i, eventType, recorded[i].Type())
		}
	}
}
