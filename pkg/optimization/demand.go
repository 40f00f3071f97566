package optimization

import (
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// AggregateDemand reduces raw order lines into total demand per material.
// Materials with no order lines are absent from the result; absence means
// "no demand constraint", not zero demand.
func AggregateDemand(orders []*entities.OrderLine) map[entities.MaterialID]float64 {
	demand := make(map[entities.MaterialID]float64, len(orders))
	for _, line := range orders {
		demand[line.MaterialID] += line.Quantity
	}
	return demand
}
