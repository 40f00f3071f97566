package memory

import (
	"fmt"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material master storage
type MaterialRepository struct {
	materials    []entities.Material
	materialsMap map[entities.MaterialID]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.Material, 0, expectedMaterials),
		materialsMap: make(map[entities.MaterialID]int, expectedMaterials),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads materials into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.Material) error {
	for _, material := range materials {
		r.AddMaterial(*material)
	}
	return nil
}

// AddMaterial adds a material to the repository
func (r *MaterialRepository) AddMaterial(material entities.Material) {
	r.materialsMap[material.MaterialID] = len(r.materials)
	r.materials = append(r.materials, material)
}

// GetMaterial returns master data for a material id
func (r *MaterialRepository) GetMaterial(materialID entities.MaterialID) (*entities.Material, error) {
	index, exists := r.materialsMap[materialID]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", materialID)
	}
	return &r.materials[index], nil
}

// GetAllMaterials returns all materials in load order
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	var materials []*entities.Material
	for i := range r.materials {
		materials = append(materials, &r.materials[i])
	}
	return materials, nil
}
