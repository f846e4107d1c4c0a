package puzzle

import "errors"

var (
	// ErrTooManyCells is returned when a puzzle would exceed MaxCells.
	ErrTooManyCells = errors.New("puzzle: cell limit exceeded")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("puzzle: coordinates outside grid")
	// ErrCellOccupied is returned when a grid position already holds a cell.
	ErrCellOccupied = errors.New("puzzle: grid position already holds a cell")
	// ErrNoCell is returned when a constraint references an empty position.
	ErrNoCell = errors.New("puzzle: no cell at grid position")
	// ErrNoSuchLine is returned for a row/column index outside the grid.
	ErrNoSuchLine = errors.New("puzzle: line index outside grid")
	// ErrNoCells is returned for a constraint over zero cells.
	ErrNoCells = errors.New("puzzle: constraint references no cells")
)
