package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/services"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/memory"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/solver"
)

func main() {
	ctx := context.Background()

	// Two plants, two materials: M1 is cheaper at P1, M2 at P2.
	materials := []*entities.Material{
		{MaterialID: "M1", Description: "Steel Bracket", UnitCost: decimal.NewFromFloat(12.50), ProductionTimeHours: 1},
		{MaterialID: "M2", Description: "Aluminum Plate", UnitCost: decimal.NewFromFloat(20), ProductionTimeHours: 2},
	}
	plants := []*entities.Plant{
		{PlantID: "P1", CapacityHoursPerWeek: 1000},
		{PlantID: "P2", CapacityHoursPerWeek: 500},
	}
	orders := []*entities.OrderLine{
		{MaterialID: "M1", Quantity: 100},
		{MaterialID: "M2", Quantity: 50},
	}
	costs := []*entities.CostEntry{
		{PlantID: "P1", MaterialID: "M1", CostType: entities.Production, CostPerUnit: decimal.NewFromFloat(5)},
		{PlantID: "P1", MaterialID: "M2", CostType: entities.Production, CostPerUnit: decimal.NewFromFloat(8)},
		{PlantID: "P2", MaterialID: "M1", CostType: entities.Production, CostPerUnit: decimal.NewFromFloat(6)},
		{PlantID: "P2", MaterialID: "M2", CostType: entities.Production, CostPerUnit: decimal.NewFromFloat(7)},
	}

	materialRepo := memory.NewMaterialRepository(len(materials))
	if err := materialRepo.LoadMaterials(materials); err != nil {
		panic(err)
	}
	plantRepo := memory.NewPlantRepository(len(plants))
	if err := plantRepo.LoadPlants(plants); err != nil {
		panic(err)
	}
	orderRepo := memory.NewOrderRepository()
	if err := orderRepo.LoadOrderLines(orders); err != nil {
		panic(err)
	}
	costRepo := memory.NewCostRepository(len(costs))
	if err := costRepo.LoadCostEntries(costs); err != nil {
		panic(err)
	}

	service := services.NewPlanningService(solver.NewSimplexSolver())

	fmt.Println("Planning weekly production...")
	result, err := service.PlanProduction(ctx, materialRepo, plantRepo, orderRepo, costRepo)
	if err != nil {
		fmt.Printf("Planning failed: %v\n", err)
		return
	}

	fmt.Printf("Status: %s\n", result.Status)
	if !result.IsOptimal() {
		return
	}

	fmt.Printf("Total cost: %.2f\n\n", result.ObjectiveValue)
	for _, plant := range result.Schedule.Plants {
		fmt.Printf("Plant %s (%.1f hours):\n", plant.PlantID, plant.HoursUsed)
		for _, line := range plant.Lines {
			fmt.Printf("  %-4s %-16s %8.2f\n", line.MaterialID, line.Description, line.Quantity)
		}
	}
}
