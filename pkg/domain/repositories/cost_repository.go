package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// CostRepository provides access to the plant/material cost table
type CostRepository interface {
	GetCostEntries() ([]*entities.CostEntry, error)
	GetCostEntriesByType(costType entities.CostType) ([]*entities.CostEntry, error)
	LoadCostEntries(entries []*entities.CostEntry) error
}
