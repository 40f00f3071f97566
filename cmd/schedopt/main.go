package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "optimize":
		err = runOptimize(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "help", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes logs to stderr so reports on stdout stay clean
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})))
}

func runOptimize(args []string) error {
	flags := flag.NewFlagSet("optimize", flag.ExitOnError)
	var (
		scenarioDir   = flags.String("scenario", "", "Path to scenario directory containing CSV files")
		materialsFile = flags.String("materials", "", "Path to materials CSV file")
		plantsFile    = flags.String("plants", "", "Path to plants CSV file")
		ordersFile    = flags.String("orders", "", "Path to orders CSV file")
		costsFile     = flags.String("costs", "", "Path to costs CSV file")
		configFile    = flags.String("config", "", "Optional YAML run configuration")
		outputDir     = flags.String("output", "", "Output directory for results (optional)")
		format        = flags.String("format", "text", "Output format: text, json, csv, html")
		verbose       = flags.Bool("verbose", false, "Enable verbose logging")
		help          = flags.Bool("help", false, "Show help message")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	cmd := commands.NewOptimizeCommand(commands.Config{
		ScenarioDir:   *scenarioDir,
		MaterialsFile: *materialsFile,
		PlantsFile:    *plantsFile,
		OrdersFile:    *ordersFile,
		CostsFile:     *costsFile,
		ConfigFile:    *configFile,
		OutputDir:     *outputDir,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	})
	return cmd.Execute(context.Background())
}

func runAnalyze(args []string) error {
	flags := flag.NewFlagSet("analyze", flag.ExitOnError)
	var (
		scenarioDir = flags.String("scenario", "", "Path to scenario directory containing CSV files")
		configFile  = flags.String("config", "", "Optional YAML run configuration")
		verbose     = flags.Bool("verbose", false, "Enable verbose logging")
		help        = flags.Bool("help", false, "Show help message")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	cmd := commands.NewAnalyzeCommand(commands.AnalyzeConfig{
		ScenarioDir: *scenarioDir,
		ConfigFile:  *configFile,
		Verbose:     *verbose,
		Help:        *help,
	})
	return cmd.Execute(context.Background())
}

func runGenerate(args []string) error {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		materials     = flags.Int("materials", 20, "Number of materials to generate")
		plants        = flags.Int("plants", 3, "Number of plants to generate")
		costCoverage  = flags.Float64("cost-coverage", 1.0, "Fraction of pairs with a production cost")
		capacitySlack = flags.Float64("capacity-slack", 1.5, "Total capacity as a multiple of required hours")
		inventory     = flags.Float64("inventory", 0, "On-hand multiplier vs demand (0 = none)")
		seed          = flags.Int64("seed", 0, "Random seed for reproducible generation")
		outputDir     = flags.String("output", "", "Output directory for the scenario")
		verbose       = flags.Bool("verbose", false, "Enable verbose logging")
		help          = flags.Bool("help", false, "Show help message")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	cmd := commands.NewGenerateCommand(commands.GenerateConfig{
		Materials:     *materials,
		Plants:        *plants,
		CostCoverage:  *costCoverage,
		CapacitySlack: *capacitySlack,
		Inventory:     *inventory,
		OutputDir:     *outputDir,
		Seed:          *seed,
		Verbose:       *verbose,
		Help:          *help,
	})
	return cmd.Execute(context.Background())
}

func usage() {
	fmt.Printf(`schedopt - production scheduling optimization

USAGE:
    schedopt <command> [options]

COMMANDS:
    optimize    Assign production quantities to plants at minimum cost
    analyze     Demand and inventory analytics for a scenario
    generate    Write a synthetic scenario directory

Run 'schedopt <command> -help' for command options.
`)
}
