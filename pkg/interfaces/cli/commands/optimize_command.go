package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	appservices "github.com/1awilliams379/production-scheduling-optimization/pkg/application/services"
	domainservices "github.com/1awilliams379/production-scheduling-optimization/pkg/domain/services"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/config"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/csv"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/repositories/memory"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/infrastructure/solver"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/interfaces/cli/output"
)

// Config holds configuration for the optimize command
type Config struct {
	ScenarioDir   string
	MaterialsFile string
	PlantsFile    string
	OrdersFile    string
	CostsFile     string
	ConfigFile    string
	OutputDir     string
	Format        string
	Verbose       bool
	Help          bool
}

// OptimizeCommand runs one optimization end to end: load, validate,
// aggregate, build, solve, extract, report.
type OptimizeCommand struct {
	config Config
}

// NewOptimizeCommand creates a new optimize command with the given configuration
func NewOptimizeCommand(config Config) *OptimizeCommand {
	return &OptimizeCommand{config: config}
}

// Execute runs the optimize command
func (c *OptimizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	runConfig, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load run configuration: %w", err)
	}
	costPolicy, err := runConfig.CostPolicy()
	if err != nil {
		return err
	}

	slog.Debug("loading input tables",
		"materials", files["Materials"],
		"plants", files["Plants"],
		"orders", files["Orders"],
		"costs", files["Costs"])

	csvLoader := csv.NewLoader()

	materials, err := csvLoader.LoadMaterials(files["Materials"])
	if err != nil {
		return fmt.Errorf("error loading materials: %w", err)
	}
	plants, err := csvLoader.LoadPlants(files["Plants"])
	if err != nil {
		return fmt.Errorf("error loading plants: %w", err)
	}
	orders, err := csvLoader.LoadOrderLines(files["Orders"])
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}
	costs, err := csvLoader.LoadCostEntries(files["Costs"])
	if err != nil {
		return fmt.Errorf("error loading costs: %w", err)
	}

	slog.Info("data loaded",
		"materials", len(materials),
		"plants", len(plants),
		"order_lines", len(orders),
		"cost_rows", len(costs))

	validation := domainservices.NewDatasetValidator().Validate(materials, plants, orders, costs)
	for _, warning := range validation.Warnings {
		slog.Warn("data quality", "issue", warning)
	}
	if !validation.IsValid() {
		return fmt.Errorf("dataset validation failed: %s", strings.Join(validation.Errors, "; "))
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
	costRepo := memory.NewCostRepository(len(costs))
	if err := costRepo.LoadCostEntries(costs); err != nil {
		return fmt.Errorf("failed to load costs into repository: %w", err)
	}

	service := appservices.NewPlanningServiceWithOptions(
		solver.NewSimplexSolverWithTolerance(runConfig.Solver.Tolerance),
		appservices.PlanningOptions{
			CostPolicy:      costPolicy,
			ScheduleEpsilon: runConfig.Schedule.Epsilon,
			SolveTimeout:    runConfig.Solver.Timeout,
		},
	)

	slog.Info("running optimization", "cost_policy", costPolicy.String())

	startTime := time.Now()
	result, err := service.PlanProduction(ctx, materialRepo, plantRepo, orderRepo, costRepo)
	if err != nil {
		return fmt.Errorf("error running optimization: %w", err)
	}

	slog.Info("optimization completed",
		"status", result.Status.String(),
		"elapsed", time.Since(startTime).Round(time.Microsecond))

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Plants:    plants,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// validateInputs validates the command configuration
func (c *OptimizeCommand) validateInputs() error {
	if c.config.ScenarioDir == "" &&
		(c.config.MaterialsFile == "" || c.config.PlantsFile == "" ||
			c.config.OrdersFile == "" || c.config.CostsFile == "") {
		return fmt.Errorf("must specify either -scenario directory or individual CSV files")
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *OptimizeCommand) resolveInputFiles() (map[string]string, error) {
	var materialsPath, plantsPath, ordersPath, costsPath string

	if c.config.ScenarioDir != "" {
		materialsPath = filepath.Join(c.config.ScenarioDir, "materials.csv")
		plantsPath = filepath.Join(c.config.ScenarioDir, "plants.csv")
		ordersPath = filepath.Join(c.config.ScenarioDir, "orders.csv")
		costsPath = filepath.Join(c.config.ScenarioDir, "costs.csv")
	} else {
		materialsPath = c.config.MaterialsFile
		plantsPath = c.config.PlantsFile
		ordersPath = c.config.OrdersFile
		costsPath = c.config.CostsFile
	}

	files := map[string]string{
		"Materials": materialsPath,
		"Plants":    plantsPath,
		"Orders":    ordersPath,
		"Costs":     costsPath,
	}

	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

// showHelp displays the help message
func (c *OptimizeCommand) showHelp() {
	fmt.Printf(`schedopt optimize - assign production to plants at minimum cost

USAGE:
    schedopt optimize -scenario <directory>          # Use scenario directory with CSV files
    schedopt optimize -materials <file> ...          # Use individual CSV files

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -materials <file>   Path to materials CSV file
    -plants <file>      Path to plants CSV file
    -orders <file>      Path to orders CSV file
    -costs <file>       Path to costs CSV file
    -config <file>      Optional YAML run configuration
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv, html (default: text)
    -verbose            Enable verbose logging
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── materials.csv   # Material master data
    ├── plants.csv      # Plant capacities
    ├── orders.csv      # Open order lines
    └── costs.csv       # Per-plant production costs

CSV FILE FORMATS:

materials.csv:
    material_id,description,unit_cost,production_time_hours
    MAT-100,Steel Bracket,12.50,1.5

plants.csv:
    plant_id,capacity_hours_per_week
    PLANT-A,1000

orders.csv:
    material_id,quantity
    MAT-100,100

costs.csv:
    plant_id,material_id,cost_type,cost_per_unit
    PLANT-A,MAT-100,Production,5.00

RUN CONFIGURATION (YAML, all optional):
    solver:
      tolerance: 1e-7
      timeout: 30s
    schedule:
      epsilon: 1e-6
    costs:
      missing_pair_policy: zero   # or: forbid

EXAMPLES:
    # Run a scenario directory
    schedopt optimize -scenario examples/two_plants -verbose

    # Export the schedule as CSV files
    schedopt optimize -scenario examples/two_plants -format csv -output results/

    # Disallow production at plants without a cost entry
    SCHEDOPT_COSTS_MISSING_PAIR_POLICY=forbid schedopt optimize -scenario examples/two_plants
`)
}
