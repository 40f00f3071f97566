package optimization

import "fmt"

// DataError reports input data that is structurally invalid: duplicate
// identifiers or conflicting cost rows. It stops a run before model
// construction.
type DataError struct {
	Detail string
}

func (e *DataError) Error() string {
	return e.Detail
}

// MissingDataError reports a required master-data value that is absent for
// an entity the model builder needs. It is raised during build so an
// incomplete model never reaches the solver.
type MissingDataError struct {
	Field    string
	EntityID string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing %s for %s", e.Field, e.EntityID)
}

// SolverError reports an engine execution failure or an expired solve.
// It is distinct from Infeasible and Unbounded, which are solution
// statuses rather than errors.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver failure: %v", e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}

// StatusError reports an attempt to extract a schedule from a solution
// whose status carries no assignments.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("no schedule available: solution status is %s", e.Status)
}
