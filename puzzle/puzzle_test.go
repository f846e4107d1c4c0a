package puzzle

import (
	"errors"
	"testing"
)

func TestOpApply(t *testing.T) {
	if got := OpAdd.Apply(3, 5); got != 8 {
		t.Errorf("add: expected 8, got %d", got)
	}
	if got := OpMultiply.Apply(3, 5); got != 15 {
		t.Errorf("multiply: expected 15, got %d", got)
	}
	if OpAdd.Symbol() != "+" || OpMultiply.Symbol() != "*" {
		t.Error("operator symbols incorrect")
	}
}

func TestCellLabel(t *testing.T) {
	c := &Cell{Index: 0, Op: OpAdd, Value: 5}
	if got := c.Label(true); got != "+5 " {
		t.Errorf("active label: expected %q, got %q", "+5 ", got)
	}
	if got := c.Label(false); got != "---" {
		t.Errorf("inactive label: expected %q, got %q", "---", got)
	}
	wide := &Cell{Index: 1, Op: OpMultiply, Value: 12}
	if got := wide.Label(true); got != "*12" {
		t.Errorf("two-digit label: expected %q, got %q", "*12", got)
	}
}

func TestAddCell(t *testing.T) {
	p := New(2, 2)

	c0, err := p.AddCell(0, 0, OpAdd, 5)
	if err != nil {
		t.Fatalf("AddCell failed: %v", err)
	}
	if c0.Index != 0 {
		t.Errorf("first cell index: expected 0, got %d", c0.Index)
	}

	c1, err := p.AddCell(1, 0, OpMultiply, 3)
	if err != nil {
		t.Fatalf("AddCell failed: %v", err)
	}
	if c1.Index != 1 {
		t.Errorf("second cell index: expected 1, got %d", c1.Index)
	}

	if len(p.Rows[0]) != 2 || len(p.Cols[0]) != 1 || len(p.Cols[1]) != 1 {
		t.Error("row/col views not updated")
	}
	if p.CellAt(0, 0) != c0 || p.CellAt(1, 0) != c1 {
		t.Error("grid lookup incorrect")
	}
	if p.CellAt(0, 1) != nil {
		t.Error("empty position should return nil")
	}

	if _, err := p.AddCell(0, 0, OpAdd, 1); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
	if _, err := p.AddCell(5, 0, OpAdd, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestCheckTotal(t *testing.T) {
	p := New(2, 1)
	p.AddCell(0, 0, OpAdd, 5)
	p.AddCell(1, 0, OpAdd, 3)
	cons, err := p.AddLineConstraint(LineRow, 0, KindTotal, 8)
	if err != nil {
		t.Fatalf("AddLineConstraint failed: %v", err)
	}

	state := p.NewState()
	if cons.Check(state) {
		t.Error("empty total 0 should not satisfy target 8")
	}
	state[0], state[1] = true, true
	if !cons.Check(state) {
		t.Error("5+3 should satisfy target 8")
	}
	state[1] = false
	if cons.Check(state) {
		t.Error("5 alone should not satisfy target 8")
	}
}

func TestCheckTotalOrder(t *testing.T) {
	// (0+2)*3 = 6 in declared order; reversed gives (0*3)+2 = 2.
	p := New(2, 1)
	p.AddCell(0, 0, OpAdd, 2)
	p.AddCell(1, 0, OpMultiply, 3)

	forward, _ := p.AddLineConstraint(LineRow, 0, KindTotal, 6)
	reverse, _ := p.AddLineConstraint(LineRowRev, 0, KindTotal, 2)

	state := p.NewState()
	state[0], state[1] = true, true
	if !forward.Check(state) {
		t.Error("forward fold should reach 6")
	}
	if !reverse.Check(state) {
		t.Error("reversed fold should reach 2")
	}
}

func TestCheckCount(t *testing.T) {
	p := New(3, 1)
	p.AddCell(0, 0, OpAdd, 1)
	p.AddCell(1, 0, OpAdd, 2)
	p.AddCell(2, 0, OpAdd, 3)
	cons, _ := p.AddLineConstraint(LineRow, 0, KindCount, 2)

	state := p.NewState()
	state[0], state[2] = true, true
	if !cons.Check(state) {
		t.Error("two active cells should satisfy count 2")
	}
	state[1] = true
	if cons.Check(state) {
		t.Error("three active cells should not satisfy count 2")
	}
}

func TestLocalMasksCount(t *testing.T) {
	// Count 2 over 3 cells: exactly the 3 pairs are valid.
	p := New(3, 1)
	p.AddCell(0, 0, OpAdd, 1)
	p.AddCell(1, 0, OpAdd, 2)
	p.AddCell(2, 0, OpAdd, 3)
	cons, _ := p.AddLineConstraint(LineRow, 0, KindCount, 2)

	patterns := cons.SatisfyingPatterns()
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(patterns))
	}
	want := []uint64{0b011, 0b101, 0b110}
	for i, pattern := range patterns {
		if pattern != want[i] {
			t.Errorf("pattern %d: got %b, want %b", i, pattern, want[i])
		}
	}

	masks := cons.LocalMasks()
	if len(masks) != 3 {
		t.Fatalf("expected 3 masks, got %d", len(masks))
	}

	coverage := p.AllOnes()
	for i, m := range masks {
		if !m.WellFormed() {
			t.Errorf("mask %d: Bits and Inv overlap", i)
		}
		if !m.Coverage().Eq(coverage) {
			t.Errorf("mask %d: coverage does not match constraint cells", i)
		}
	}
}

func TestLocalMasksMatchCheck(t *testing.T) {
	// Every returned mask, applied to a fresh state, satisfies the
	// constraint; every omitted pattern fails it.
	p := New(2, 1)
	p.AddCell(0, 0, OpAdd, 5)
	p.AddCell(1, 0, OpAdd, 3)
	cons, _ := p.AddLineConstraint(LineRow, 0, KindTotal, 8)

	masks := cons.LocalMasks()
	if len(masks) != 1 {
		t.Fatalf("expected 1 mask, got %d", len(masks))
	}

	state := p.NewState()
	masks[0].Apply(state)
	if !state[0] || !state[1] {
		t.Error("unique mask should activate both cells")
	}
	if !cons.Check(state) {
		t.Error("applied mask should satisfy the constraint")
	}
}

func TestLocalMasksUnsatisfiable(t *testing.T) {
	p := New(2, 1)
	p.AddCell(0, 0, OpAdd, 5)
	p.AddCell(1, 0, OpAdd, 3)
	cons, _ := p.AddLineConstraint(LineRow, 0, KindTotal, 100)

	if masks := cons.LocalMasks(); len(masks) != 0 {
		t.Errorf("unreachable target: expected 0 masks, got %d", len(masks))
	}
}

func TestStateBitsRoundTrip(t *testing.T) {
	state := NewState(5)
	state[0], state[3] = true, true

	bits := state.Bits()
	if bits.Uint64() != 0b01001 {
		t.Errorf("expected bits 0b01001, got %#b", bits.Uint64())
	}

	restored := NewState(5)
	restored.SetFromBits(bits)
	for i := range state {
		if state[i] != restored[i] {
			t.Errorf("cell %d: round trip mismatch", i)
		}
	}
}

func TestAllOnes(t *testing.T) {
	if got := AllOnes(3).Uint64(); got != 0b111 {
		t.Errorf("AllOnes(3): expected 0b111, got %#b", got)
	}
	if !AllOnes(0).IsZero() {
		t.Error("AllOnes(0) should be zero")
	}
	full := AllOnes(MaxCells)
	for i := 0; i < MaxCells; i++ {
		if !bitSet(full, i) {
			t.Fatalf("AllOnes(%d): bit %d unset", MaxCells, i)
		}
	}
}

func TestAddCellsConstraint(t *testing.T) {
	p := New(2, 2)
	p.AddCell(0, 0, OpAdd, 1)
	p.AddCell(1, 1, OpAdd, 2)

	cons, err := p.AddCellsConstraint(KindTotal, 3, []Coord{{1, 1}, {0, 0}})
	if err != nil {
		t.Fatalf("AddCellsConstraint failed: %v", err)
	}
	if len(cons.Cells) != 2 || cons.Cells[0].Index != 1 {
		t.Error("explicit cell order not preserved")
	}

	if _, err := p.AddCellsConstraint(KindTotal, 1, []Coord{{0, 1}}); !errors.Is(err, ErrNoCell) {
		t.Errorf("expected ErrNoCell, got %v", err)
	}
}
