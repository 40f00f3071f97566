package memory

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// ProductionHistoryRepository provides in-memory production history storage
type ProductionHistoryRepository struct {
	records []entities.ProductionRecord
	byPlant map[entities.PlantID][]int
}

// NewProductionHistoryRepository creates a new in-memory production history repository
func NewProductionHistoryRepository() *ProductionHistoryRepository {
	return &ProductionHistoryRepository{
		byPlant: make(map[entities.PlantID][]int),
	}
}

// Verify interface compliance
var _ repositories.ProductionHistoryRepository = (*ProductionHistoryRepository)(nil)

// LoadRecords loads production records into the repository
func (r *ProductionHistoryRepository) LoadRecords(records []*entities.ProductionRecord) error {
	for _, record := range records {
		r.byPlant[record.PlantID] = append(r.byPlant[record.PlantID], len(r.records))
		r.records = append(r.records, *record)
	}
	return nil
}

// GetRecordsByPlant returns production postings for one plant in load order
func (r *ProductionHistoryRepository) GetRecordsByPlant(
	plantID entities.PlantID,
) ([]*entities.ProductionRecord, error) {
	var records []*entities.ProductionRecord
	for _, index := range r.byPlant[plantID] {
		records = append(records, &r.records[index])
	}
	return records, nil
}

// GetAllRecords returns all production records in load order
func (r *ProductionHistoryRepository) GetAllRecords() ([]*entities.ProductionRecord, error) {
	var records []*entities.ProductionRecord
	for i := range r.records {
		records = append(records, &r.records[i])
	}
	return records, nil
}
