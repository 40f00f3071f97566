package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// MaterialRepository provides access to material master data
type MaterialRepository interface {
	GetMaterial(materialID entities.MaterialID) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	LoadMaterials(materials []*entities.Material) error
}
