package solver

import (
	"testing"

	"github.com/pflow-xyz/go-crosscells/cache"
	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// twoCellRow builds the 2x1 grid with +5 and +3 and one row total
// constraint.
func twoCellRow(t *testing.T, target int64) *puzzle.Puzzle {
	t.Helper()
	p := puzzle.New(2, 1)
	if _, err := p.AddCell(0, 0, puzzle.OpAdd, 5); err != nil {
		t.Fatalf("AddCell failed: %v", err)
	}
	if _, err := p.AddCell(1, 0, puzzle.OpAdd, 3); err != nil {
		t.Fatalf("AddCell failed: %v", err)
	}
	if _, err := p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindTotal, target); err != nil {
		t.Fatalf("AddLineConstraint failed: %v", err)
	}
	return p
}

func TestBruteForceFindsUniqueSolution(t *testing.T) {
	p := twoCellRow(t, 8)

	// Price the by-constraint method out so the whole-board scan runs.
	rep := New(p).WithConstraintRate(1e-9).Solve()

	if rep.Outcome != OutcomeSolved {
		t.Fatalf("expected solved, got %s", rep.Outcome)
	}
	if rep.Strategy != StrategyBruteForce {
		t.Fatalf("expected brute force strategy, got %s", rep.Strategy)
	}
	// Unique solution is both cells active: bit pattern 0b11, found
	// as the last of the 4 patterns.
	if rep.Index != 3 {
		t.Errorf("expected solution at index 3, got %d", rep.Index)
	}
	if rep.Tries != 4 {
		t.Errorf("expected 4 tries, got %d", rep.Tries)
	}
	if !rep.State[0] || !rep.State[1] {
		t.Error("expected both cells active")
	}
	if rep.Solution.Uint64() != 0b11 {
		t.Errorf("expected solution bits 0b11, got %#b", rep.Solution.Uint64())
	}
}

func TestByConstraintFindsSolution(t *testing.T) {
	p := twoCellRow(t, 8)

	rep := New(p).Solve()

	if rep.Strategy != StrategyByConstraint {
		t.Fatalf("expected by-constraint strategy, got %s", rep.Strategy)
	}
	if rep.Outcome != OutcomeSolved {
		t.Fatalf("expected solved, got %s", rep.Outcome)
	}
	if !p.Check(rep.State) {
		t.Error("reported state does not satisfy the puzzle")
	}
	if rep.Solution.Uint64() != 0b11 {
		t.Errorf("expected solution bits 0b11, got %#b", rep.Solution.Uint64())
	}
}

func TestUnreachableTargetExhaustsBothStrategies(t *testing.T) {
	// Max reachable total is 8; target 100 has no solution.
	brute := New(twoCellRow(t, 100)).WithConstraintRate(1e-9).Solve()
	if brute.Outcome != OutcomeExhausted {
		t.Errorf("brute force: expected exhausted, got %s", brute.Outcome)
	}
	if brute.Tries != 4 {
		t.Errorf("brute force: expected 4 tries, got %d", brute.Tries)
	}
	if brute.State != nil || brute.Solution != nil {
		t.Error("brute force: exhausted report should carry no solution")
	}

	// By-constraint: the constraint has zero local masks, so the
	// product is empty and the search never iterates.
	byCons := New(twoCellRow(t, 100)).Solve()
	if byCons.Strategy != StrategyByConstraint {
		t.Fatalf("expected by-constraint strategy, got %s", byCons.Strategy)
	}
	if byCons.Outcome != OutcomeExhausted {
		t.Errorf("by-constraint: expected exhausted, got %s", byCons.Outcome)
	}
	if byCons.Tries != 0 {
		t.Errorf("by-constraint: expected 0 tries for empty product, got %d", byCons.Tries)
	}
}

func TestStrategiesAgreeOnSatisfiability(t *testing.T) {
	// 2x2 grid with row totals and column counts; a solution exists.
	p := puzzle.New(2, 2)
	p.AddCell(0, 0, puzzle.OpAdd, 2)
	p.AddCell(1, 0, puzzle.OpAdd, 3)
	p.AddCell(0, 1, puzzle.OpMultiply, 4)
	p.AddCell(1, 1, puzzle.OpAdd, 1)
	p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindTotal, 5)
	p.AddLineConstraint(puzzle.LineRow, 1, puzzle.KindCount, 1)
	p.AddLineConstraint(puzzle.LineCol, 0, puzzle.KindCount, 2)

	brute := New(p).WithConstraintRate(1e-9).Solve()
	byCons := New(p).WithBruteRate(1e-9).Solve()

	if brute.Strategy != StrategyBruteForce || byCons.Strategy != StrategyByConstraint {
		t.Fatalf("rate rigging failed: got %s / %s", brute.Strategy, byCons.Strategy)
	}
	if brute.Outcome != OutcomeSolved || byCons.Outcome != OutcomeSolved {
		t.Fatalf("expected both strategies solved, got %s / %s",
			brute.Outcome, byCons.Outcome)
	}
	if !p.Check(brute.State) || !p.Check(byCons.State) {
		t.Error("a reported state does not satisfy the puzzle")
	}
}

func TestByConstraintTraversalOrder(t *testing.T) {
	// count_1 over [A,B] yields masks (A-only, B-only) in that order;
	// total_3 with A=+1, B=+3 yields only B-only. The first product
	// combination (A-only, B-only) contradicts itself, the second
	// (B-only, B-only) is consistent, so the hit lands at index 1.
	p := puzzle.New(2, 1)
	p.AddCell(0, 0, puzzle.OpAdd, 1)
	p.AddCell(1, 0, puzzle.OpAdd, 3)
	p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindCount, 1)
	p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindTotal, 3)

	rep := New(p).WithBruteRate(1e-9).Solve()

	if rep.Strategy != StrategyByConstraint {
		t.Fatalf("expected by-constraint strategy, got %s", rep.Strategy)
	}
	if rep.Outcome != OutcomeSolved {
		t.Fatalf("expected solved, got %s", rep.Outcome)
	}
	if rep.Index != 1 || rep.Tries != 2 {
		t.Errorf("expected hit at index 1 on try 2, got index %d try %d",
			rep.Index, rep.Tries)
	}
	if rep.State[0] || !rep.State[1] {
		t.Error("expected only the second cell active")
	}
}

func TestAbortTooCostly(t *testing.T) {
	p := twoCellRow(t, 8)

	rep := New(p).WithAbortThreshold(0).WithBruteRate(0.001).WithConstraintRate(0.001).Solve()

	if rep.Outcome != OutcomeAbortedTooCostly {
		t.Fatalf("expected aborted-too-costly, got %s", rep.Outcome)
	}
	if rep.Tries != 0 {
		t.Errorf("aborted solve must perform zero iterations, got %d tries", rep.Tries)
	}
	if rep.Estimate == nil || rep.Estimate.Feasible {
		t.Error("estimate should be present and infeasible")
	}
	if rep.State != nil {
		t.Error("aborted report should carry no state")
	}
}

func TestParallelBruteForce(t *testing.T) {
	p := puzzle.New(3, 1)
	p.AddCell(0, 0, puzzle.OpAdd, 1)
	p.AddCell(1, 0, puzzle.OpAdd, 2)
	p.AddCell(2, 0, puzzle.OpAdd, 4)
	p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindTotal, 5)

	rep := New(p).WithConstraintRate(1e-9).WithWorkers(4).Solve()

	if rep.Outcome != OutcomeSolved {
		t.Fatalf("expected solved, got %s", rep.Outcome)
	}
	if !p.Check(rep.State) {
		t.Error("parallel result does not satisfy the puzzle")
	}
	// Unique solution: cells 0 and 2 active.
	if rep.Solution.Uint64() != 0b101 {
		t.Errorf("expected solution bits 0b101, got %#b", rep.Solution.Uint64())
	}
}

func TestParallelBruteForceExhausts(t *testing.T) {
	p := twoCellRow(t, 100)
	rep := New(p).WithConstraintRate(1e-9).WithWorkers(2).Solve()
	if rep.Outcome != OutcomeExhausted {
		t.Fatalf("expected exhausted, got %s", rep.Outcome)
	}
}

func TestSharedPatternCache(t *testing.T) {
	shared := cache.NewPatternCache(0)

	first := New(twoCellRow(t, 8)).WithPatternCache(shared).Solve()
	second := New(twoCellRow(t, 8)).WithPatternCache(shared).Solve()
	if first.Outcome != OutcomeSolved || second.Outcome != OutcomeSolved {
		t.Fatalf("expected both solves to succeed, got %s / %s",
			first.Outcome, second.Outcome)
	}

	stats := shared.Stats()
	if stats.Size != 1 {
		t.Errorf("identical constraint shapes should share one entry, got %d", stats.Size)
	}
	if stats.Hits == 0 {
		t.Error("second solve should hit the shared cache")
	}
}

func TestOutcomeStateMachine(t *testing.T) {
	if OutcomeUnsolved.Terminal() {
		t.Error("unsolved must not be terminal")
	}
	for _, o := range []Outcome{OutcomeSolved, OutcomeExhausted, OutcomeAbortedTooCostly} {
		if !o.Terminal() {
			t.Errorf("%s must be terminal", o)
		}
	}
}
