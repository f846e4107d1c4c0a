package results

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pflow-xyz/go-crosscells/puzzle"
	"github.com/pflow-xyz/go-crosscells/solver"
)

func solvedRun(t *testing.T) (*puzzle.Puzzle, *solver.Report) {
	t.Helper()
	p := puzzle.New(2, 1)
	p.AddCell(0, 0, puzzle.OpAdd, 5)
	p.AddCell(1, 0, puzzle.OpAdd, 3)
	p.AddLineConstraint(puzzle.LineRow, 0, puzzle.KindTotal, 8)

	rep := solver.New(p).Solve()
	if rep.Outcome != solver.OutcomeSolved {
		t.Fatalf("fixture solve failed: %s", rep.Outcome)
	}
	return p, rep
}

func TestFromReport(t *testing.T) {
	p, rep := solvedRun(t)

	res := FromReport("fixture", p, rep)

	if res.Version != SchemaVersion {
		t.Errorf("expected schema %s, got %s", SchemaVersion, res.Version)
	}
	if res.Metadata.Outcome != "solved" {
		t.Errorf("expected outcome solved, got %s", res.Metadata.Outcome)
	}
	if res.Model.Cells != 2 || res.Model.Constraints != 1 {
		t.Errorf("model summary wrong: %+v", res.Model)
	}
	if res.Estimate.BruteChoices != "4" {
		t.Errorf("expected 4 brute choices, got %s", res.Estimate.BruteChoices)
	}
	if res.Search == nil {
		t.Fatal("solved run must carry a search block")
	}
	if res.Search.Solution != "0x3" {
		t.Errorf("expected solution 0x3, got %s", res.Search.Solution)
	}
	if !strings.Contains(res.Search.Grid, "+5") {
		t.Errorf("rendered grid missing cells: %q", res.Search.Grid)
	}
}

func TestFromReportAborted(t *testing.T) {
	p, _ := solvedRun(t)
	rep := solver.New(p).WithAbortThreshold(0).WithBruteRate(0.001).WithConstraintRate(0.001).Solve()
	if rep.Outcome != solver.OutcomeAbortedTooCostly {
		t.Fatalf("fixture abort failed: %s", rep.Outcome)
	}

	res := FromReport("fixture", p, rep)
	if res.Search != nil {
		t.Error("aborted run must not carry a search block")
	}
	if res.Estimate.Feasible {
		t.Error("aborted run estimate must be infeasible")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p, rep := solvedRun(t)
	res := FromReport("fixture", p, rep)

	path := filepath.Join(t.TempDir(), "run.json")
	if err := WriteJSON(res, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	back, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if back.Metadata.Strategy != res.Metadata.Strategy {
		t.Errorf("strategy changed in round trip: %s != %s",
			back.Metadata.Strategy, res.Metadata.Strategy)
	}
	if back.Search == nil || back.Search.Solution != res.Search.Solution {
		t.Error("search block lost in round trip")
	}

	str, err := ToJSON(res)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	again, err := FromJSON(str)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if again.Estimate.BruteChoices != res.Estimate.BruteChoices {
		t.Error("estimate lost in string round trip")
	}
}
