package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// InventoryRepository provides access to on-hand inventory records
type InventoryRepository interface {
	GetRecordsByMaterial(materialID entities.MaterialID) ([]*entities.InventoryRecord, error)
	GetAllRecords() ([]*entities.InventoryRecord, error)
	LoadRecords(records []*entities.InventoryRecord) error
}
