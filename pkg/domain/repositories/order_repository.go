package repositories

import "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"

// OrderRepository provides access to open sales order lines
type OrderRepository interface {
	GetOrderLines() ([]*entities.OrderLine, error)
	LoadOrderLines(lines []*entities.OrderLine) error
}
