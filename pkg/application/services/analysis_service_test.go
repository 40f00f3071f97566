package services

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/testing"
)

func TestAnalysisService_TopDemand(t *testing.T) {
	materialRepo, _, orderRepo, _ := testhelpers.BuildTwoPlantDataset().Repositories()

	report, err := NewAnalysisService().Analyze(materialRepo, orderRepo, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(report.TopDemand) != 2 {
		t.Fatalf("Expected 2 demand lines, got %d", len(report.TopDemand))
	}

	// M1 aggregates two order lines (60 + 40) and ranks first.
	if report.TopDemand[0].MaterialID != "M1" || report.TopDemand[0].TotalQuantity != 100 {
		t.Errorf("Expected M1 with 100 first, got %+v", report.TopDemand[0])
	}
	if report.TopDemand[0].Description != "Steel Bracket" {
		t.Errorf("Expected joined description, got %s", report.TopDemand[0].Description)
	}
	if report.TopDemand[1].MaterialID != "M2" || report.TopDemand[1].TotalQuantity != 50 {
		t.Errorf("Expected M2 with 50 second, got %+v", report.TopDemand[1])
	}
}

func TestAnalysisService_TopDemandCutoff(t *testing.T) {
	materialRepo, _, orderRepo, _ := testhelpers.BuildUncostedMaterialDataset().Repositories()

	report, err := NewAnalysisServiceWithTopDemand(1).Analyze(materialRepo, orderRepo, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(report.TopDemand) != 1 {
		t.Fatalf("Expected 1 demand line with cutoff 1, got %d", len(report.TopDemand))
	}
	if report.TopDemand[0].MaterialID != "M1" {
		t.Errorf("Expected M1 to rank first, got %s", report.TopDemand[0].MaterialID)
	}
}

func TestAnalysisService_DemandValue(t *testing.T) {
	materialRepo, _, orderRepo, _ := testhelpers.BuildTwoPlantDataset().Repositories()

	report, err := NewAnalysisService().Analyze(materialRepo, orderRepo, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// M1: 100 x 12.50 = 1250, M2: 50 x 20 = 1000.
	expectedTotal := decimal.NewFromFloat(2250)
	if !report.DemandValue.Total.Equal(expectedTotal) {
		t.Errorf("Expected total demand value 2250, got %s", report.DemandValue.Total)
	}
	if math.Abs(report.DemandValue.Mean-1125) > 1e-9 {
		t.Errorf("Expected mean 1125, got %v", report.DemandValue.Mean)
	}
	if math.Abs(report.DemandValue.Max-1250) > 1e-9 {
		t.Errorf("Expected max 1250, got %v", report.DemandValue.Max)
	}
	if report.DemandValue.StdDev <= 0 {
		t.Errorf("Expected positive standard deviation, got %v", report.DemandValue.StdDev)
	}
}

func TestAnalysisService_InventoryCoverage(t *testing.T) {
	materialRepo, _, orderRepo, _ := testhelpers.BuildTwoPlantDataset().Repositories()

	inventoryRepo := memory.NewInventoryRepository()
	records := []*entities.InventoryRecord{
		{MaterialID: "M1", Location: "EAST-DC", QuantityOnHand: 80},
		{MaterialID: "M1", Location: "WEST-DC", QuantityOnHand: 40},
		{MaterialID: "M2", Location: "EAST-DC", QuantityOnHand: 10},
	}
	if err := inventoryRepo.LoadRecords(records); err != nil {
		t.Fatalf("Failed to load inventory: %v", err)
	}

	report, err := NewAnalysisService().Analyze(materialRepo, orderRepo, inventoryRepo)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(report.Coverage) != 2 {
		t.Fatalf("Expected 2 coverage lines, got %d", len(report.Coverage))
	}

	// M1: 120 on hand against demand 100 -> covered.
	m1 := report.Coverage[0]
	if m1.MaterialID != "M1" || m1.NeedsProduction {
		t.Errorf("Expected M1 fully covered, got %+v", m1)
	}
	if math.Abs(m1.Coverage-1.2) > 1e-9 {
		t.Errorf("Expected M1 coverage 1.2, got %v", m1.Coverage)
	}

	// M2: 10 on hand against demand 50 -> needs production.
	m2 := report.Coverage[1]
	if m2.MaterialID != "M2" || !m2.NeedsProduction {
		t.Errorf("Expected M2 to need production, got %+v", m2)
	}
}

func TestAnalysisService_ProductionHistory(t *testing.T) {
	_, plantRepo, _, _ := testhelpers.BuildTwoPlantDataset().Repositories()

	historyRepo := memory.NewProductionHistoryRepository()
	records := []*entities.ProductionRecord{
		{PlantID: "P1", MaterialID: "M1", Quantity: 120, ProducedOn: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		{PlantID: "P1", MaterialID: "M2", Quantity: 30, ProducedOn: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)},
		{PlantID: "P2", MaterialID: "M1", Quantity: 45, ProducedOn: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)},
	}
	if err := historyRepo.LoadRecords(records); err != nil {
		t.Fatalf("Failed to load production history: %v", err)
	}

	history, err := NewAnalysisService().AnalyzeHistory(plantRepo, historyRepo)
	if err != nil {
		t.Fatalf("AnalyzeHistory failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("Expected 2 history lines, got %d", len(history))
	}

	p1 := history[0]
	if p1.PlantID != "P1" || p1.TotalQuantity != 150 {
		t.Errorf("Expected P1 with total 150, got %+v", p1)
	}
	if !p1.LastProducedOn.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected last posting 2026-08-17 for P1, got %s", p1.LastProducedOn)
	}

	p2 := history[1]
	if p2.PlantID != "P2" || p2.TotalQuantity != 45 {
		t.Errorf("Expected P2 with total 45, got %+v", p2)
	}
}
