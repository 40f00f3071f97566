package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/dto"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Plants    []*entities.Plant
}

// Generate renders a plan result in the configured format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "html":
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput prints a human-readable schedule to stdout
func generateTextOutput(result *dto.PlanResult, config Config) error {
	fmt.Printf("Production Schedule\n")
	fmt.Printf("===================\n\n")

	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Model: %d variables, %d constraints\n",
		result.ModelSize.Variables, result.ModelSize.Constraints)
	fmt.Printf("Solve Time: %v\n", result.SolveTime.Round(time.Microsecond))

	if !result.IsOptimal() {
		fmt.Printf("\nNo schedule available: the model is %s.\n", result.Status)
		if len(result.Demand) > 0 {
			fmt.Printf("Open demand could not be planned for %d materials.\n", len(result.Demand))
		}
		return nil
	}

	fmt.Printf("Total Cost: %.2f\n", result.ObjectiveValue)
	fmt.Printf("Total Quantity: %.2f\n\n", result.Schedule.TotalQuantity)

	capacities := capacityByPlant(config.Plants)
	for _, plant := range result.Schedule.Plants {
		fmt.Printf("Plant %s\n", plant.PlantID)
		if capacity, known := capacities[plant.PlantID]; known {
			fmt.Printf("  Hours: %.1f of %.1f\n", plant.HoursUsed, capacity)
		} else {
			fmt.Printf("  Hours: %.1f\n", plant.HoursUsed)
		}

		if len(plant.Lines) == 0 {
			fmt.Printf("  (idle)\n\n")
			continue
		}

		fmt.Printf("  %-12s %-30s %12s\n", "Material", "Description", "Quantity")
		fmt.Printf("  %-12s %-30s %12s\n", "------------", "------------------------------", "------------")
		for _, line := range plant.Lines {
			fmt.Printf("  %-12s %-30s %12.2f\n", line.MaterialID, line.Description, line.Quantity)
		}
		fmt.Printf("  %-43s %12.2f\n\n", "Plant total", plant.TotalQuantity)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Results directory: %s\n", config.OutputDir)
		}
	}

	return nil
}

// jsonReport is the wire shape of a plan result
type jsonReport struct {
	Status         string           `json:"status"`
	ObjectiveValue *float64         `json:"objective_value,omitempty"`
	SolveTimeMS    float64          `json:"solve_time_ms"`
	Variables      int              `json:"variables"`
	Constraints    int              `json:"constraints"`
	Plants         []jsonPlantLines `json:"plants,omitempty"`
}

type jsonPlantLines struct {
	PlantID       entities.PlantID `json:"plant_id"`
	Lines         []jsonLine       `json:"lines"`
	TotalQuantity float64          `json:"total_quantity"`
	HoursUsed     float64          `json:"hours_used"`
}

type jsonLine struct {
	MaterialID  entities.MaterialID `json:"material_id"`
	Description string              `json:"description"`
	Quantity    float64             `json:"quantity"`
}

func buildJSONReport(result *dto.PlanResult) jsonReport {
	report := jsonReport{
		Status:      result.Status.String(),
		SolveTimeMS: float64(result.SolveTime) / float64(time.Millisecond),
		Variables:   result.ModelSize.Variables,
		Constraints: result.ModelSize.Constraints,
	}

	if !result.IsOptimal() {
		return report
	}

	objective := result.ObjectiveValue
	report.ObjectiveValue = &objective
	for _, plant := range result.Schedule.Plants {
		jsonPlant := jsonPlantLines{
			PlantID:       plant.PlantID,
			TotalQuantity: plant.TotalQuantity,
			HoursUsed:     plant.HoursUsed,
		}
		for _, line := range plant.Lines {
			jsonPlant.Lines = append(jsonPlant.Lines, jsonLine{
				MaterialID:  line.MaterialID,
				Description: line.Description,
				Quantity:    line.Quantity,
			})
		}
		report.Plants = append(report.Plants, jsonPlant)
	}
	return report
}

// generateJSONOutput writes the plan result as JSON to stdout or a file
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(buildJSONReport(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "schedule.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the schedule and plant totals as CSV files
func generateCSVOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if !result.IsOptimal() {
		return fmt.Errorf("no schedule to export: status is %s", result.Status)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	scheduleFile := filepath.Join(config.OutputDir, "schedule.csv")
	if err := writeScheduleCSV(result, scheduleFile); err != nil {
		return fmt.Errorf("failed to write schedule CSV: %w", err)
	}

	totalsFile := filepath.Join(config.OutputDir, "plant_totals.csv")
	if err := writePlantTotalsCSV(result, totalsFile); err != nil {
		return fmt.Errorf("failed to write plant totals CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("CSV results saved to:\n")
		fmt.Printf("  Schedule: %s\n", scheduleFile)
		fmt.Printf("  Plant Totals: %s\n", totalsFile)
	}
	return nil
}

func writeScheduleCSV(result *dto.PlanResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"plant_id", "material_id", "description", "quantity"}); err != nil {
		return err
	}

	for _, plant := range result.Schedule.Plants {
		for _, line := range plant.Lines {
			record := []string{
				string(plant.PlantID),
				string(line.MaterialID),
				line.Description,
				strconv.FormatFloat(line.Quantity, 'f', -1, 64),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func writePlantTotalsCSV(result *dto.PlanResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"plant_id", "total_quantity", "hours_used"}); err != nil {
		return err
	}

	for _, plant := range result.Schedule.Plants {
		record := []string{
			string(plant.PlantID),
			strconv.FormatFloat(plant.TotalQuantity, 'f', -1, 64),
			strconv.FormatFloat(plant.HoursUsed, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func capacityByPlant(plants []*entities.Plant) map[entities.PlantID]float64 {
	capacities := make(map[entities.PlantID]float64, len(plants))
	for _, plant := range plants {
		capacities[plant.PlantID] = plant.CapacityHoursPerWeek
	}
	return capacities
}
