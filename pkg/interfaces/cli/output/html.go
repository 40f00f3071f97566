package output

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/application/dto"
	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// PlantReport is one plant's section of the HTML report
type PlantReport struct {
	PlantID        entities.PlantID
	Lines          []LineReport
	TotalQuantity  float64
	HoursUsed      float64
	CapacityHours  float64
	UtilizationPct float64
}

// LineReport is one schedule line of the HTML report
type LineReport struct {
	MaterialID  entities.MaterialID
	Description string
	Quantity    float64
}

// ReportData feeds the HTML report template
type ReportData struct {
	GeneratedAt    time.Time
	Status         string
	Optimal        bool
	ObjectiveValue float64
	TotalQuantity  float64
	SolveTime      time.Duration
	Variables      int
	Constraints    int
	Plants         []PlantReport
}

// generateHTMLOutput renders a self-contained HTML report into the output
// directory
func generateHTMLOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for HTML format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data := buildReportData(result, config.Plants)

	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "schedule.html")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	if config.Verbose {
		fmt.Printf("HTML report saved to: %s\n", filename)
	}
	return nil
}

func buildReportData(result *dto.PlanResult, plants []*entities.Plant) ReportData {
	data := ReportData{
		GeneratedAt: time.Now(),
		Status:      result.Status.String(),
		Optimal:     result.IsOptimal(),
		SolveTime:   result.SolveTime.Round(time.Microsecond),
		Variables:   result.ModelSize.Variables,
		Constraints: result.ModelSize.Constraints,
	}

	if !result.IsOptimal() {
		return data
	}

	data.ObjectiveValue = result.ObjectiveValue
	data.TotalQuantity = result.Schedule.TotalQuantity

	capacities := capacityByPlant(plants)
	for _, plant := range result.Schedule.Plants {
		report := PlantReport{
			PlantID:       plant.PlantID,
			TotalQuantity: plant.TotalQuantity,
			HoursUsed:     plant.HoursUsed,
			CapacityHours: capacities[plant.PlantID],
		}
		if report.CapacityHours > 0 {
			report.UtilizationPct = 100 * plant.HoursUsed / report.CapacityHours
		}
		for _, line := range plant.Lines {
			report.Lines = append(report.Lines, LineReport{
				MaterialID:  line.MaterialID,
				Description: line.Description,
				Quantity:    line.Quantity,
			})
		}
		data.Plants = append(data.Plants, report)
	}
	return data
}
