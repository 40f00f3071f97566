package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	appservices "github.com/1awilliams379/production-scheduling-optimization/pkg/application/services"
	domainservices "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/services"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/config"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/csv"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/memory"
)

// AnalyzeConfig holds configuration for the analyze command
type AnalyzeConfig struct {
	ScenarioDir string
	ConfigFile  string
	Verbose     bool
	Help        bool
}

// AnalyzeCommand reports demand, value, and inventory-coverage analytics
// for a scenario without solving it.
type AnalyzeCommand struct {
	config AnalyzeConfig
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config AnalyzeConfig) *AnalyzeCommand {
	return &AnalyzeCommand{config: config}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.ScenarioDir == "" {
		return fmt.Errorf("must specify -scenario directory")
	}

	runConfig, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load run configuration: %w", err)
	}

	csvLoader := csv.NewLoader()

	materials, err := csvLoader.LoadMaterials(filepath.Join(c.config.ScenarioDir, "materials.csv"))
	if err != nil {
		return fmt.Errorf("error loading materials: %w", err)
	}
	plants, err := csvLoader.LoadPlants(filepath.Join(c.config.ScenarioDir, "plants.csv"))
	if err != nil {
		return fmt.Errorf("error loading plants: %w", err)
	}
	orders, err := csvLoader.LoadOrderLines(filepath.Join(c.config.ScenarioDir, "orders.csv"))
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}
	costs, err := csvLoader.LoadCostEntries(filepath.Join(c.config.ScenarioDir, "costs.csv"))
	if err != nil {
		return fmt.Errorf("error loading costs: %w", err)
	}

	materialRepo := memory.NewMaterialRepository(len(materials))
	if err := materialRepo.LoadMaterials(materials); err != nil {
		return fmt.Errorf("failed to load materials into repository: %w", err)
	}
	plantRepo := memory.NewPlantRepository(len(plants))
	if err := plantRepo.LoadPlants(plants); err != nil {
		return fmt.Errorf("failed to load plants into repository: %w", err)
	}
	orderRepo := memory.NewOrderRepository()
	if err := orderRepo.LoadOrderLines(orders); err != nil {
		return fmt.Errorf("failed to load orders into repository: %w", err)
	}

	// Inventory is an optional analytics table.
	var inventoryRepo *memory.InventoryRepository
	inventoryPath := filepath.Join(c.config.ScenarioDir, "inventory.csv")
	if _, err := os.Stat(inventoryPath); err == nil {
		inventory, err := csvLoader.LoadInventory(inventoryPath)
		if err != nil {
			return fmt.Errorf("error loading inventory: %w", err)
		}
		inventoryRepo = memory.NewInventoryRepository()
		if err := inventoryRepo.LoadRecords(inventory); err != nil {
			return fmt.Errorf("failed to load inventory into repository: %w", err)
		}
		slog.Debug("inventory table loaded", "records", len(inventory))
	}

	// Production history is an optional analytics table too.
	var historyRepo *memory.ProductionHistoryRepository
	historyPath := filepath.Join(c.config.ScenarioDir, "production_history.csv")
	if _, err := os.Stat(historyPath); err == nil {
		history, err := csvLoader.LoadProductionHistory(historyPath)
		if err != nil {
			return fmt.Errorf("error loading production history: %w", err)
		}
		historyRepo = memory.NewProductionHistoryRepository()
		if err := historyRepo.LoadRecords(history); err != nil {
			return fmt.Errorf("failed to load production history into repository: %w", err)
		}
		slog.Debug("production history loaded", "records", len(history))
	}

	fmt.Printf("Scenario Analysis\n")
	fmt.Printf("=================\n\n")

	validation := domainservices.NewDatasetValidator().Validate(materials, plants, orders, costs)
	fmt.Printf("Data Quality: %d errors, %d warnings\n", len(validation.Errors), len(validation.Warnings))
	for _, problem := range validation.Errors {
		fmt.Printf("  ERROR: %s\n", problem)
	}
	for _, warning := range validation.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	fmt.Println()

	analysisService := appservices.NewAnalysisServiceWithTopDemand(runConfig.Report.TopDemand)

	var report *appservices.AnalysisReport
	if inventoryRepo != nil {
		report, err = analysisService.Analyze(materialRepo, orderRepo, inventoryRepo)
	} else {
		report, err = analysisService.Analyze(materialRepo, orderRepo, nil)
	}
	if err != nil {
		return fmt.Errorf("error running analysis: %w", err)
	}

	c.printReport(report)

	if historyRepo != nil {
		history, err := analysisService.AnalyzeHistory(plantRepo, historyRepo)
		if err != nil {
			return fmt.Errorf("error analyzing production history: %w", err)
		}
		c.printHistory(history)
	}
	return nil
}

func (c *AnalyzeCommand) printHistory(history []appservices.PlantHistoryLine) {
	if len(history) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Production History:\n")
	fmt.Printf("  %-12s %14s %14s\n", "Plant", "Total Produced", "Last Posting")
	for _, line := range history {
		fmt.Printf("  %-12s %14.2f %14s\n",
			line.PlantID, line.TotalQuantity, line.LastProducedOn.Format("2006-01-02"))
	}
}

func (c *AnalyzeCommand) printReport(report *appservices.AnalysisReport) {
	fmt.Printf("Top Demand (by quantity):\n")
	fmt.Printf("  %-12s %-30s %12s\n", "Material", "Description", "Quantity")
	for _, line := range report.TopDemand {
		fmt.Printf("  %-12s %-30s %12.2f\n", line.MaterialID, line.Description, line.TotalQuantity)
	}
	fmt.Println()

	fmt.Printf("Demand Value:\n")
	fmt.Printf("  Total:  %s\n", report.DemandValue.Total.StringFixed(2))
	fmt.Printf("  Mean:   %.2f\n", report.DemandValue.Mean)
	fmt.Printf("  Max:    %.2f\n", report.DemandValue.Max)
	fmt.Printf("  StdDev: %.2f\n", report.DemandValue.StdDev)
	fmt.Println()

	if len(report.Coverage) > 0 {
		fmt.Printf("Inventory Coverage:\n")
		fmt.Printf("  %-12s %10s %10s %10s %s\n", "Material", "Demand", "On Hand", "Coverage", "")
		for _, line := range report.Coverage {
			flag := ""
			if line.NeedsProduction {
				flag = "needs production"
			}
			fmt.Printf("  %-12s %10.2f %10.2f %9.0f%% %s\n",
				line.MaterialID, line.Demand, line.OnHand, 100*line.Coverage, flag)
		}
	}
}

// showHelp displays the help message
func (c *AnalyzeCommand) showHelp() {
	fmt.Printf(`schedopt analyze - demand and inventory analytics for a scenario

USAGE:
    schedopt analyze -scenario <directory>

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -config <file>      Optional YAML run configuration (report.top_demand)
    -verbose            Enable verbose logging
    -help               Show this help message

The scenario directory uses the same CSV files as the optimize command.
Optional analytics tables are included in the report when present:

inventory.csv:
    material_id,location,quantity_on_hand
    MAT-100,EAST-DC,40

production_history.csv:
    plant_id,material_id,quantity,produced_on
    PLANT-A,MAT-100,120,2026-08-17
`)
}
