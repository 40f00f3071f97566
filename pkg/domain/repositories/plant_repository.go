package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// PlantRepository provides access to plant master data
type PlantRepository interface {
	GetPlant(plantID entities.PlantID) (*entities.Plant, error)
	GetAllPlants() ([]*entities.Plant, error)
	LoadPlants(plants []*entities.Plant) error
}
