package optimization

import (
	"fmt"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/domain/entities"
)

// Variable is one non-negative continuous decision variable: how much of a
// material one plant produces. Column position matches creation order.
type Variable struct {
	Name string
	Key  entities.PlantMaterial

	index int
}

// Index returns the variable's column position in the model
func (v *Variable) Index() int {
	return v.index
}

// Term is one coefficient×variable product in a linear expression
type Term struct {
	Coefficient float64
	Variable    *Variable
}

// Sense is the comparison direction of a constraint
type Sense int

const (
	LessOrEqual Sense = iota
	GreaterOrEqual
)

// String method for Sense enum
func (s Sense) String() string {
	switch s {
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// Constraint is a named linear constraint over model variables
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Model is an assembled linear program: an ordered set of decision
// variables, one minimization objective, and an ordered set of uniquely
// named constraints. A model is built once per run and must not be
// mutated after it is handed to a Solver.
type Model struct {
	variables   []*Variable
	varIndex    map[entities.PlantMaterial]int
	objective   []Term
	constraints []Constraint
	names       map[string]struct{}
}

// NewModel creates an empty Model sized for the expected problem
func NewModel(expectedVariables, expectedConstraints int) *Model {
	return &Model{
		variables:   make([]*Variable, 0, expectedVariables),
		varIndex:    make(map[entities.PlantMaterial]int, expectedVariables),
		constraints: make([]Constraint, 0, expectedConstraints),
		names:       make(map[string]struct{}, expectedConstraints),
	}
}

// AddVariable creates the decision variable for a (plant, material) pair.
// Each pair gets exactly one variable.
func (m *Model) AddVariable(name string, key entities.PlantMaterial) (*Variable, error) {
	if _, exists := m.varIndex[key]; exists {
		return nil, &DataError{Detail: fmt.Sprintf("duplicate decision variable for %s", key)}
	}

	variable := &Variable{Name: name, Key: key, index: len(m.variables)}
	m.varIndex[key] = variable.index
	m.variables = append(m.variables, variable)
	return variable, nil
}

// Variable returns the decision variable for a (plant, material) pair
func (m *Model) Variable(key entities.PlantMaterial) (*Variable, bool) {
	index, exists := m.varIndex[key]
	if !exists {
		return nil, false
	}
	return m.variables[index], true
}

// Variables returns all decision variables in creation order
func (m *Model) Variables() []*Variable {
	return m.variables
}

// SetObjective replaces the minimization objective
func (m *Model) SetObjective(terms []Term) {
	m.objective = terms
}

// Objective returns the minimization objective terms
func (m *Model) Objective() []Term {
	return m.objective
}

// AddConstraint appends a named linear constraint. Names must be unique
// within the model.
func (m *Model) AddConstraint(name string, terms []Term, sense Sense, rhs float64) error {
	if _, exists := m.names[name]; exists {
		return &DataError{Detail: fmt.Sprintf("duplicate constraint name %s", name)}
	}

	m.names[name] = struct{}{}
	m.constraints = append(m.constraints, Constraint{
		Name:  name,
		Terms: terms,
		Sense: sense,
		RHS:   rhs,
	})
	return nil
}

// Constraints returns all constraints in the order they were added
func (m *Model) Constraints() []Constraint {
	return m.constraints
}

// NumVariables returns the number of decision variables
func (m *Model) NumVariables() int {
	return len(m.variables)
}

// NumConstraints returns the number of constraints
func (m *Model) NumConstraints() int {
	return len(m.constraints)
}
