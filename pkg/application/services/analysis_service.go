package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/repositories"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// DemandSummaryLine is one material's total open demand
type DemandSummaryLine struct {
	MaterialID    entities.MaterialID
	Description   string
	TotalQuantity float64
}

// DemandValueStats are descriptive statistics over per-material demand
// value (quantity × unit cost). Total is exact decimal arithmetic; the
// float statistics describe the distribution.
type DemandValueStats struct {
	Total  decimal.Decimal
	Mean   float64
	Max    float64
	StdDev float64
}

// CoverageLine compares a material's on-hand inventory with its demand
type CoverageLine struct {
	MaterialID      entities.MaterialID
	Demand          float64
	OnHand          float64
	Coverage        float64
	NeedsProduction bool
}

// PlantHistoryLine summarizes historical production postings at one plant
type PlantHistoryLine struct {
	PlantID        entities.PlantID
	TotalQuantity  float64
	LastProducedOn time.Time
}

// AnalysisReport is the descriptive-analytics companion to a plan
type AnalysisReport struct {
	TopDemand   []DemandSummaryLine
	DemandValue DemandValueStats
	Coverage    []CoverageLine
}

// AnalysisService computes demand and inventory analytics beside the
// optimizer. It never mutates the input tables.
type AnalysisService struct {
	topDemand int
}

// NewAnalysisService creates an analysis service reporting the top 5 materials
func NewAnalysisService() *AnalysisService {
	return NewAnalysisServiceWithTopDemand(5)
}

// NewAnalysisServiceWithTopDemand creates an analysis service with an
// explicit top-N cutoff
func NewAnalysisServiceWithTopDemand(topDemand int) *AnalysisService {
	if topDemand <= 0 {
		topDemand = 5
	}
	return &AnalysisService{topDemand: topDemand}
}

// Analyze builds the analytics report for one input snapshot. The
// inventory repository is optional; without it no coverage lines are
// produced.
func (s *AnalysisService) Analyze(
	materialRepo repositories.MaterialRepository,
	orderRepo repositories.OrderRepository,
	inventoryRepo repositories.InventoryRepository,
) (*AnalysisReport, error) {
	materials, err := materialRepo.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to read materials: %w", err)
	}
	orders, err := orderRepo.GetOrderLines()
	if err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	demand := optimization.AggregateDemand(orders)

	report := &AnalysisReport{
		TopDemand:   s.topDemandLines(materials, demand),
		DemandValue: demandValueStats(materials, demand),
	}

	if inventoryRepo != nil {
		coverage, err := coverageLines(materials, demand, inventoryRepo)
		if err != nil {
			return nil, err
		}
		report.Coverage = coverage
	}

	return report, nil
}

// topDemandLines ranks materials by total demand, descending, ties broken
// by material listing order.
func (s *AnalysisService) topDemandLines(
	materials []*entities.Material,
	demand map[entities.MaterialID]float64,
) []DemandSummaryLine {
	var lines []DemandSummaryLine
	for _, material := range materials {
		total, open := demand[material.MaterialID]
		if !open {
			continue
		}
		lines = append(lines, DemandSummaryLine{
			MaterialID:    material.MaterialID,
			Description:   material.Description,
			TotalQuantity: total,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].TotalQuantity > lines[j].TotalQuantity
	})

	if len(lines) > s.topDemand {
		lines = lines[:s.topDemand]
	}
	return lines
}

func demandValueStats(
	materials []*entities.Material,
	demand map[entities.MaterialID]float64,
) DemandValueStats {
	total := decimal.Zero
	var values []float64
	for _, material := range materials {
		quantity, open := demand[material.MaterialID]
		if !open {
			continue
		}

		value := material.UnitCost.Mul(decimal.NewFromFloat(quantity))
		total = total.Add(value)
		values = append(values, value.InexactFloat64())
	}

	stats := DemandValueStats{Total: total}
	if len(values) == 0 {
		return stats
	}

	stats.Mean = stat.Mean(values, nil)
	stats.StdDev = stat.StdDev(values, nil)
	if len(values) == 1 {
		stats.StdDev = 0
	}
	stats.Max = math.Inf(-1)
	for _, value := range values {
		stats.Max = math.Max(stats.Max, value)
	}
	return stats
}

// AnalyzeHistory totals historical production postings per plant, in plant
// listing order. Plants with no postings are skipped.
func (s *AnalysisService) AnalyzeHistory(
	plantRepo repositories.PlantRepository,
	historyRepo repositories.ProductionHistoryRepository,
) ([]PlantHistoryLine, error) {
	plants, err := plantRepo.GetAllPlants()
	if err != nil {
		return nil, fmt.Errorf("failed to read plants: %w", err)
	}

	var lines []PlantHistoryLine
	for _, plant := range plants {
		records, err := historyRepo.GetRecordsByPlant(plant.PlantID)
		if err != nil {
			return nil, fmt.Errorf("failed to read production history for %s: %w", plant.PlantID, err)
		}
		if len(records) == 0 {
			continue
		}

		line := PlantHistoryLine{PlantID: plant.PlantID}
		for _, record := range records {
			line.TotalQuantity += record.Quantity
			if record.ProducedOn.After(line.LastProducedOn) {
				line.LastProducedOn = record.ProducedOn
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func coverageLines(
	materials []*entities.Material,
	demand map[entities.MaterialID]float64,
	inventoryRepo repositories.InventoryRepository,
) ([]CoverageLine, error) {
	var lines []CoverageLine
	for _, material := range materials {
		quantity, open := demand[material.MaterialID]
		if !open {
			continue
		}

		records, err := inventoryRepo.GetRecordsByMaterial(material.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("failed to read inventory for %s: %w", material.MaterialID, err)
		}

		var onHand float64
		for _, record := range records {
			onHand += record.QuantityOnHand
		}

		coverage := onHand / quantity
		lines = append(lines, CoverageLine{
			MaterialID:      material.MaterialID,
			Demand:          quantity,
			OnHand:          onHand,
			Coverage:        coverage,
			NeedsProduction: coverage < 1.0,
		})
	}
	return lines, nil
}
