package memory

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory record storage
type InventoryRepository struct {
	records    []entities.InventoryRecord
	byMaterial map[entities.MaterialID][]int
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byMaterial: make(map[entities.MaterialID][]int),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadRecords loads inventory records into the repository
func (r *InventoryRepository) LoadRecords(records []*entities.InventoryRecord) error {
	for _, record := range records {
		r.byMaterial[record.MaterialID] = append(r.byMaterial[record.MaterialID], len(r.records))
		r.records = append(r.records, *record)
	}
	return nil
}

// GetRecordsByMaterial returns on-hand records for one material in load order
func (r *InventoryRepository) GetRecordsByMaterial(
	materialID entities.MaterialID,
) ([]*entities.InventoryRecord, error) {
	var records []*entities.InventoryRecord
	for _, index := range r.byMaterial[materialID] {
		records = append(records, &r.records[index])
	}
	return records, nil
}

// GetAllRecords returns all inventory records in load order
func (r *InventoryRepository) GetAllRecords() ([]*entities.InventoryRecord, error) {
	var records []*entities.InventoryRecord
	for i := range r.records {
		records = append(records, &r.records[i])
	}
	return records, nil
}
