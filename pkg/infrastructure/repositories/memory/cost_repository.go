package memory

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// CostRepository provides in-memory cost table storage
type CostRepository struct {
	entries []entities.CostEntry
}

// NewCostRepository creates a new in-memory cost repository
func NewCostRepository(expectedEntries int) *CostRepository {
	return &CostRepository{
		entries: make([]entities.CostEntry, 0, expectedEntries),
	}
}

// Verify interface compliance
var _ repositories.CostRepository = (*CostRepository)(nil)

// LoadCostEntries loads cost entries into the repository
func (r *CostRepository) LoadCostEntries(entries []*entities.CostEntry) error {
	for _, entry := range entries {
		r.entries = append(r.entries, *entry)
	}
	return nil
}

// GetCostEntries returns all cost entries in load order
func (r *CostRepository) GetCostEntries() ([]*entities.CostEntry, error) {
	var entries []*entities.CostEntry
	for i := range r.entries {
		entries = append(entries, &r.entries[i])
	}
	return entries, nil
}

// GetCostEntriesByType returns cost entries of one cost type in load order
func (r *CostRepository) GetCostEntriesByType(
	costType entities.CostType,
) ([]*entities.CostEntry, error) {
	var entries []*entities.CostEntry
	for i := range r.entries {
		if r.entries[i].CostType == costType {
			entries = append(entries, &r.entries[i])
		}
	}
	return entries, nil
}
