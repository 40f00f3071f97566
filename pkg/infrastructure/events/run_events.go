package events

import (
	"time"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

const (
	RunStartedEvent        = "run.started"
	DataLoadedEvent        = "data.loaded"
	ModelBuiltEvent        = "model.built"
	SolveCompletedEvent    = "solve.completed"
	ScheduleExtractedEvent = "schedule.extracted"
	ShortfallEvent         = "shortfall.identified"
)

type RunStarted struct {
	RunID      string                  `json:"run_id"`
	CostPolicy optimization.CostPolicy `json:"cost_policy"`
}

type DataLoaded struct {
	Materials  int `json:"materials"`
	Plants     int `json:"plants"`
	OrderLines int `json:"order_lines"`
	CostRows   int `json:"cost_rows"`
}

type ModelBuilt struct {
	Variables   int `json:"variables"`
	Constraints int `json:"constraints"`
}

type SolveCompleted struct {
	Status         optimization.Status `json:"status"`
	ObjectiveValue float64             `json:"objective_value"`
	Elapsed        time.Duration       `json:"elapsed"`
}

type ScheduleExtracted struct {
	Plants        int     `json:"plants"`
	TotalQuantity float64 `json:"total_quantity"`
}

type ShortfallIdentified struct {
	Status optimization.Status `json:"status"`
}

func NewRunStartedEvent(runID string, policy optimization.CostPolicy) Event {
	return NewEvent(RunStartedEvent, runID, RunStarted{RunID: runID, CostPolicy: policy})
}

func NewDataLoadedEvent(runID string, materials, plants, orderLines, costRows int) Event {
	return NewEvent(DataLoadedEvent, runID, DataLoaded{
		Materials:  materials,
		Plants:     plants,
		OrderLines: orderLines,
		CostRows:   costRows,
	})
}

func NewModelBuiltEvent(runID string, model *optimization.Model) Event {
	return NewEvent(ModelBuiltEvent, runID, ModelBuilt{
		Variables:   model.NumVariables(),
		Constraints: model.NumConstraints(),
	})
}

func NewSolveCompletedEvent(runID string, solution *optimization.Solution, elapsed time.Duration) Event {
	return NewEvent(SolveCompletedEvent, runID, SolveCompleted{
		Status:         solution.Status,
		ObjectiveValue: solution.ObjectiveValue,
		Elapsed:        elapsed,
	})
}

func NewScheduleExtractedEvent(runID string, schedule *optimization.ProductionSchedule) Event {
	return NewEvent(ScheduleExtractedEvent, runID, ScheduleExtracted{
		Plants:        len(schedule.Plants),
		TotalQuantity: schedule.TotalQuantity,
	})
}

func NewShortfallEvent(runID string, status optimization.Status) Event {
	return NewEvent(ShortfallEvent, runID, ShortfallIdentified{Status: status})
}
