package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	Materials     int     // Number of materials to generate
	Plants        int     // Number of plants to generate
	CostCoverage  float64 // Fraction of (plant, material) pairs with a production cost
	CapacitySlack float64 // Capacity multiplier vs required hours (<1 tends to infeasible)
	Inventory     float64 // On-hand multiplier vs demand (0 = no inventory.csv)
	OutputDir     string  // Output directory for generated files
	Seed          int64   // Random seed for reproducible generation
	Verbose       bool    // Verbose output
	Help          bool    // Show help
}

// GenerateCommand writes a synthetic scenario directory
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if cmd.config.Materials <= 0 || cmd.config.Plants <= 0 {
		return fmt.Errorf("need at least one material and one plant")
	}
	if cmd.config.OutputDir == "" {
		return fmt.Errorf("must specify -output directory")
	}

	slog.Info("generating scenario",
		"materials", cmd.config.Materials,
		"plants", cmd.config.Plants,
		"cost_coverage", cmd.config.CostCoverage,
		"capacity_slack", cmd.config.CapacitySlack,
		"seed", cmd.config.Seed)

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Materials and demand first: required hours drive plant capacities.
	productionTimes := make([]float64, cmd.config.Materials)
	demand := make([]float64, cmd.config.Materials)
	var requiredHours float64
	for i := range productionTimes {
		productionTimes[i] = 0.5 + float64(cmd.rand.Intn(6))*0.5
		demand[i] = float64(10 + cmd.rand.Intn(190))
		requiredHours += productionTimes[i] * demand[i]
	}

	if err := cmd.writeMaterials(productionTimes); err != nil {
		return err
	}
	if err := cmd.writeOrders(demand); err != nil {
		return err
	}
	if err := cmd.writePlants(requiredHours); err != nil {
		return err
	}
	if err := cmd.writeCosts(); err != nil {
		return err
	}
	if cmd.config.Inventory > 0 {
		if err := cmd.writeInventory(demand); err != nil {
			return err
		}
	}

	slog.Info("scenario written", "dir", cmd.config.OutputDir)
	return nil
}

func (cmd *GenerateCommand) materialID(i int) string {
	return fmt.Sprintf("MAT-%03d", i+1)
}

func (cmd *GenerateCommand) plantID(p int) string {
	return fmt.Sprintf("PLANT-%02d", p+1)
}

func (cmd *GenerateCommand) writeMaterials(productionTimes []float64) error {
	descriptions := []string{"Bracket", "Plate", "Housing", "Shaft", "Washer", "Flange", "Coupling", "Spacer"}

	rows := [][]string{{"material_id", "description", "unit_cost", "production_time_hours"}}
	for i, hours := range productionTimes {
		description := fmt.Sprintf("%s %s", descriptions[cmd.rand.Intn(len(descriptions))], cmd.materialID(i))
		unitCost := fmt.Sprintf("%.2f", 2+cmd.rand.Float64()*48)
		rows = append(rows, []string{
			cmd.materialID(i),
			description,
			unitCost,
			strconv.FormatFloat(hours, 'f', -1, 64),
		})
	}
	return cmd.writeCSV("materials.csv", rows)
}

func (cmd *GenerateCommand) writeOrders(demand []float64) error {
	rows := [][]string{{"material_id", "quantity"}}
	for i, total := range demand {
		// Some materials arrive as multiple order lines to exercise
		// aggregation; a few get none and stay unconstrained.
		if cmd.rand.Float64() < 0.1 {
			continue
		}
		lines := 1 + cmd.rand.Intn(3)
		remaining := total
		for l := 0; l < lines; l++ {
			quantity := remaining / float64(lines-l)
			remaining -= quantity
			rows = append(rows, []string{
				cmd.materialID(i),
				fmt.Sprintf("%.0f", quantity),
			})
		}
	}
	return cmd.writeCSV("orders.csv", rows)
}

func (cmd *GenerateCommand) writePlants(requiredHours float64) error {
	slack := cmd.config.CapacitySlack
	if slack <= 0 {
		slack = 1.5
	}

	// Total capacity across plants is requiredHours x slack, split unevenly.
	weights := make([]float64, cmd.config.Plants)
	var weightSum float64
	for p := range weights {
		weights[p] = 0.5 + cmd.rand.Float64()
		weightSum += weights[p]
	}

	rows := [][]string{{"plant_id", "capacity_hours_per_week"}}
	for p, weight := range weights {
		capacity := requiredHours * slack * weight / weightSum
		rows = append(rows, []string{
			cmd.plantID(p),
			fmt.Sprintf("%.0f", capacity),
		})
	}
	return cmd.writeCSV("plants.csv", rows)
}

func (cmd *GenerateCommand) writeCosts() error {
	coverage := cmd.config.CostCoverage
	if coverage <= 0 || coverage > 1 {
		coverage = 1
	}

	rows := [][]string{{"plant_id", "material_id", "cost_type", "cost_per_unit"}}
	for p := 0; p < cmd.config.Plants; p++ {
		for i := 0; i < cmd.config.Materials; i++ {
			if cmd.rand.Float64() >= coverage {
				continue
			}
			rows = append(rows, []string{
				cmd.plantID(p),
				cmd.materialID(i),
				"Production",
				fmt.Sprintf("%.2f", 1+cmd.rand.Float64()*19),
			})
		}
	}
	return cmd.writeCSV("costs.csv", rows)
}

func (cmd *GenerateCommand) writeInventory(demand []float64) error {
	locations := []string{"EAST-DC", "WEST-DC", "CENTRAL-DC"}

	rows := [][]string{{"material_id", "location", "quantity_on_hand"}}
	for i, total := range demand {
		onHand := total * cmd.config.Inventory * cmd.rand.Float64()
		if onHand < 1 {
			continue
		}
		rows = append(rows, []string{
			cmd.materialID(i),
			locations[cmd.rand.Intn(len(locations))],
			fmt.Sprintf("%.0f", onHand),
		})
	}
	return cmd.writeCSV("inventory.csv", rows)
}

func (cmd *GenerateCommand) writeCSV(name string, rows [][]string) error {
	path := filepath.Join(cmd.config.OutputDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if cmd.config.Verbose {
		slog.Debug("wrote table", "file", path, "rows", len(rows)-1)
	}
	return nil
}

func (cmd *GenerateCommand) printHelp() {
	fmt.Printf(`schedopt generate - write a synthetic scenario directory

USAGE:
    schedopt generate -output <dir> [options]

OPTIONS:
    -materials <n>      Number of materials to generate (default: 20)
    -plants <n>         Number of plants to generate (default: 3)
    -cost-coverage <f>  Fraction of (plant, material) pairs with a production
                        cost entry (default: 1.0; lower values exercise the
                        missing-cost policy)
    -capacity-slack <f> Total plant capacity as a multiple of the hours the
                        demand requires (default: 1.5; below 1.0 the scenario
                        tends to be infeasible)
    -inventory <f>      On-hand inventory multiplier vs demand; 0 disables
                        inventory.csv (default: 0)
    -seed <n>           Random seed for reproducible generation
    -output <dir>       Output directory for the scenario
    -verbose            Enable verbose logging
    -help               Show this help message
`)
}
