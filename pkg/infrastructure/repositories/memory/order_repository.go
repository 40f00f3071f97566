package memory

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
)

// OrderRepository provides in-memory order line storage
type OrderRepository struct {
	lines []entities.OrderLine
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrderLines loads order lines into the repository
func (r *OrderRepository) LoadOrderLines(lines []*entities.OrderLine) error {
	for _, line := range lines {
		r.lines = append(r.lines, *line)
	}
	return nil
}

// GetOrderLines returns all order lines in load order
func (r *OrderRepository) GetOrderLines() ([]*entities.OrderLine, error) {
	var lines []*entities.OrderLine
	for i := range r.lines {
		lines = append(lines, &r.lines[i])
	}
	return lines, nil
}
