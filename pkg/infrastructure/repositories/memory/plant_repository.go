package memory

import (
	"fmt"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// PlantRepository provides in-memory plant master storage
type PlantRepository struct {
	plants    []entities.Plant
	plantsMap map[entities.PlantID]int
}

// NewPlantRepository creates a new in-memory plant repository
func NewPlantRepository(expectedPlants int) *PlantRepository {
	return &PlantRepository{
		plants:    make([]entities.Plant, 0, expectedPlants),
		plantsMap: make(map[entities.PlantID]int, expectedPlants),
	}
}

// Verify interface compliance
var _ repositories.PlantRepository = (*PlantRepository)(nil)

// LoadPlants loads plants into the repository
func (r *PlantRepository) LoadPlants(plants []*entities.Plant) error {
	for _, plant := range plants {
		r.AddPlant(*plant)
	}
	return nil
}

// AddPlant adds a plant to the repository
func (r *PlantRepository) AddPlant(plant entities.Plant) {
	r.plantsMap[plant.PlantID] = len(r.plants)
	r.plants = append(r.plants, plant)
}

// GetPlant returns master data for a plant id
func (r *PlantRepository) GetPlant(plantID entities.PlantID) (*entities.Plant, error) {
	index, exists := r.plantsMap[plantID]
	if !exists {
		return nil, fmt.Errorf("plant not found: %s", plantID)
	}
	return &r.plants[index], nil
}

// GetAllPlants returns all plants in load order
func (r *PlantRepository) GetAllPlants() ([]*entities.Plant, error) {
	var plants []*entities.Plant
	for i := range r.plants {
		plants = append(plants, &r.plants[i])
	}
	return plants, nil
}
