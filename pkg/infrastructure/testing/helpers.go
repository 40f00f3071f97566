package testing

import (
	"github.com/shopspring/decimal"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/memory"
)

// Dataset is one complete input snapshot for an optimization run
type Dataset struct {
	Materials []*entities.Material
	Plants    []*entities.Plant
	Orders    []*entities.OrderLine
	Costs     []*entities.CostEntry
}

// Repositories loads the dataset into fresh in-memory repositories
func (d *Dataset) Repositories() (
	*memory.MaterialRepository,
	*memory.PlantRepository,
	*memory.OrderRepository,
	*memory.CostRepository,
) {
	materialRepo := memory.NewMaterialRepository(len(d.Materials))
	if err := materialRepo.LoadMaterials(d.Materials); err != nil {
		panic(err)
	}

	plantRepo := memory.NewPlantRepository(len(d.Plants))
	if err := plantRepo.LoadPlants(d.Plants); err != nil {
		panic(err)
	}

	orderRepo := memory.NewOrderRepository()
	if err := orderRepo.LoadOrderLines(d.Orders); err != nil {
		panic(err)
	}

	costRepo := memory.NewCostRepository(len(d.Costs))
	if err := costRepo.LoadCostEntries(d.Costs); err != nil {
		panic(err)
	}

	return materialRepo, plantRepo, orderRepo, costRepo
}

func productionCost(plant, material string, cost float64) *entities.CostEntry {
	return &entities.CostEntry{
		PlantID:     entities.PlantID(plant),
		MaterialID:  entities.MaterialID(material),
		CostType:    entities.Production,
		CostPerUnit: decimal.NewFromFloat(cost),
	}
}

// BuildTwoPlantDataset builds the cheap-plant split scenario: M1 is cheaper
// at P1, M2 is cheaper at P2, both capacities are sufficient. The minimum
// cost assignment is all M1 at P1 and all M2 at P2 for a total of 850.
func BuildTwoPlantDataset() *Dataset {
	return &Dataset{
		Materials: []*entities.Material{
			{MaterialID: "M1", Description: "Steel Bracket", UnitCost: decimal.NewFromFloat(12.50), ProductionTimeHours: 1},
			{MaterialID: "M2", Description: "Aluminum Plate", UnitCost: decimal.NewFromFloat(20), ProductionTimeHours: 2},
		},
		Plants: []*entities.Plant{
			{PlantID: "P1", CapacityHoursPerWeek: 1000},
			{PlantID: "P2", CapacityHoursPerWeek: 500},
		},
		Orders: []*entities.OrderLine{
			{MaterialID: "M1", Quantity: 60},
			{MaterialID: "M1", Quantity: 40},
			{MaterialID: "M2", Quantity: 50},
		},
		Costs: []*entities.CostEntry{
			productionCost("P1", "M1", 5),
			productionCost("P1", "M2", 8),
			productionCost("P2", "M1", 6),
			productionCost("P2", "M2", 7),
		},
	}
}

// BuildOverloadedDataset builds a scenario whose demand exceeds the
// combined weighted capacity of all plants. No feasible assignment exists.
func BuildOverloadedDataset() *Dataset {
	dataset := BuildTwoPlantDataset()
	dataset.Orders = []*entities.OrderLine{
		{MaterialID: "M1", Quantity: 2000},
	}
	return dataset
}

// BuildUncostedMaterialDataset extends the two-plant scenario with a
// material that has no production cost row at any plant. Its demand must
// still be satisfied and contributes nothing to the objective.
func BuildUncostedMaterialDataset() *Dataset {
	dataset := BuildTwoPlantDataset()
	dataset.Materials = append(dataset.Materials, &entities.Material{
		MaterialID:          "M3",
		Description:         "Copper Washer",
		UnitCost:            decimal.NewFromFloat(3.75),
		ProductionTimeHours: 1,
	})
	dataset.Orders = append(dataset.Orders, &entities.OrderLine{MaterialID: "M3", Quantity: 20})
	return dataset
}
