// Package puzzle implements the core CrossCells data structures.
// A puzzle is a rectangular grid of operator cells, each toggled active
// or inactive, subject to row/column arithmetic constraints. Activation
// state lives in a flat State buffer indexed by cell id; cells and
// constraints themselves are immutable after construction.
package puzzle

import "fmt"

// Op identifies the arithmetic operator a cell applies when active.
type Op int

const (
	// OpAdd adds the cell's value to the running total.
	OpAdd Op = iota
	// OpMultiply multiplies the running total by the cell's value.
	OpMultiply
)

// Symbol returns the display character for the operator.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMultiply:
		return "*"
	default:
		return "?"
	}
}

// String returns a readable name for the operator.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Apply folds the operator into a running total.
func (o Op) Apply(total, operand int64) int64 {
	if o == OpMultiply {
		return total * operand
	}
	return total + operand
}

// Cell is a single operator cell. Index is the cell's global id,
// assigned in construction order, and is the cell's bit position in
// every Mask and solution word. Op and Value never change after
// creation.
type Cell struct {
	Index int
	Op    Op
	Value int64
}

// Apply folds this cell's operator into a running total. Called by
// total constraints for active cells only, in declared cell order.
func (c *Cell) Apply(total int64) int64 {
	return c.Op.Apply(total, c.Value)
}

// Label renders the cell for grid display: operator symbol plus the
// value left-aligned to two columns when active, "---" when inactive.
func (c *Cell) Label(active bool) string {
	if !active {
		return "---"
	}
	return fmt.Sprintf("%s%-2d", c.Op.Symbol(), c.Value)
}
