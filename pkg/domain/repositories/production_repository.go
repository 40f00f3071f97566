package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// ProductionHistoryRepository provides access to historical production postings
type ProductionHistoryRepository interface {
	GetRecordsByPlant(plantID entities.PlantID) ([]*entities.ProductionRecord, error)
	GetAllRecords() ([]*entities.ProductionRecord, error)
	LoadRecords(records []*entities.ProductionRecord) error
}
