package puzzle

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Line selects a row or column (optionally reversed) when attaching a
// constraint to a whole grid line. Reversal changes the declared cell
// order, which total constraints fold in sequence.
type Line int

const (
	LineRow Line = iota
	LineCol
	LineRowRev
	LineColRev
)

// String returns the position token used by the text format.
func (l Line) String() string {
	switch l {
	case LineRow:
		return "row"
	case LineCol:
		return "col"
	case LineRowRev:
		return "rowrev"
	case LineColRev:
		return "colrev"
	default:
		return fmt.Sprintf("line(%d)", int(l))
	}
}

// Coord addresses a grid position, x across, y down.
type Coord struct {
	X, Y int
}

// Puzzle is a complete CrossCells board: the grid of cells, the
// row/column views over the same cells, the flat cell list whose order
// defines every cell's global bit index, and the declared constraints.
// Shape is immutable once built; only activation State changes during
// a solve.
type Puzzle struct {
	Width  int
	Height int

	// Grid is indexed [y][x]; nil marks an empty position.
	Grid [][]*Cell
	// Rows and Cols share the Grid's cells in grid order.
	Rows [][]*Cell
	Cols [][]*Cell
	// Cells holds every cell; a cell's slice position equals its Index.
	Cells []*Cell

	Constraints []*Constraint
}

// New creates an empty puzzle with the given dimensions.
func New(width, height int) *Puzzle {
	p := &Puzzle{
		Width:  width,
		Height: height,
		Rows:   make([][]*Cell, height),
		Cols:   make([][]*Cell, width),
		Grid:   make([][]*Cell, height),
	}
	for y := range p.Grid {
		p.Grid[y] = make([]*Cell, width)
	}
	return p
}

// AddCell places a new operator cell at (x, y), assigning it the next
// global index. Cells must be added in the order the puzzle definition
// declares them, since the index doubles as the cell's bit position.
func (p *Puzzle) AddCell(x, y int, op Op, value int64) (*Cell, error) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if p.Grid[y][x] != nil {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, x, y)
	}
	if len(p.Cells) >= MaxCells {
		return nil, ErrTooManyCells
	}

	cell := &Cell{Index: len(p.Cells), Op: op, Value: value}
	p.Grid[y][x] = cell
	p.Rows[y] = append(p.Rows[y], cell)
	p.Cols[x] = append(p.Cols[x], cell)
	p.Cells = append(p.Cells, cell)
	return cell, nil
}

// CellAt returns the cell at (x, y), or nil for an empty position.
// Out-of-range coordinates also return nil.
func (p *Puzzle) CellAt(x, y int) *Cell {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return nil
	}
	return p.Grid[y][x]
}

// AddLineConstraint declares a constraint over an entire row or
// column, in grid order or reversed.
func (p *Puzzle) AddLineConstraint(line Line, index int, kind Kind, target int64) (*Constraint, error) {
	var cells []*Cell
	switch line {
	case LineRow, LineRowRev:
		if index < 0 || index >= p.Height {
			return nil, fmt.Errorf("%w: %s_%d", ErrNoSuchLine, line, index)
		}
		cells = p.Rows[index]
	case LineCol, LineColRev:
		if index < 0 || index >= p.Width {
			return nil, fmt.Errorf("%w: %s_%d", ErrNoSuchLine, line, index)
		}
		cells = p.Cols[index]
	default:
		return nil, fmt.Errorf("%w: %s_%d", ErrNoSuchLine, line, index)
	}
	if line == LineRowRev || line == LineColRev {
		cells = reversed(cells)
	}
	return p.addConstraint(kind, target, cells)
}

// AddCellsConstraint declares a constraint over an explicit ordered
// list of grid positions.
func (p *Puzzle) AddCellsConstraint(kind Kind, target int64, coords []Coord) (*Constraint, error) {
	cells := make([]*Cell, 0, len(coords))
	for _, at := range coords {
		cell := p.CellAt(at.X, at.Y)
		if cell == nil {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrNoCell, at.X, at.Y)
		}
		cells = append(cells, cell)
	}
	return p.addConstraint(kind, target, cells)
}

func (p *Puzzle) addConstraint(kind Kind, target int64, cells []*Cell) (*Constraint, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	c := &Constraint{Kind: kind, Target: target, Cells: cells}
	p.Constraints = append(p.Constraints, c)
	return c, nil
}

// NewState returns a fresh all-inactive activation buffer sized for
// this puzzle.
func (p *Puzzle) NewState() State {
	return NewState(len(p.Cells))
}

// AllOnes returns the word with one bit set per cell of this puzzle.
func (p *Puzzle) AllOnes() *uint256.Int {
	return AllOnes(len(p.Cells))
}

// Check reports whether every constraint holds under the given state,
// evaluating in declaration order and stopping at the first failure.
func (p *Puzzle) Check(state State) bool {
	for _, c := range p.Constraints {
		if !c.Check(state) {
			return false
		}
	}
	return true
}

func reversed(cells []*Cell) []*Cell {
	out := make([]*Cell, len(cells))
	for i, c := range cells {
		out[len(cells)-1-i] = c
	}
	return out
}
