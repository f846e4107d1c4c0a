// Package results defines the structured output format for solve runs.
package results

import (
	"time"

	"github.com/pflow-xyz/go-crosscells/puzzle"
	"github.com/pflow-xyz/go-crosscells/solver"
	"github.com/pflow-xyz/go-crosscells/visualization"
)

const SchemaVersion = "1.0.0"

// Results contains the complete output of one solve run.
type Results struct {
	Version  string   `json:"version"`
	Metadata Metadata `json:"metadata"`
	Model    Model    `json:"model"`
	Estimate Estimate `json:"estimate"`
	Search   *Search  `json:"search,omitempty"`
}

// Metadata contains run execution information.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Strategy  string    `json:"strategy"`
	Outcome   string    `json:"outcome"`
	// ComputeTime is the search duration in seconds; zero when the
	// run was aborted before searching.
	ComputeTime float64 `json:"computeTime"`
}

// Model summarizes the puzzle structure.
type Model struct {
	Name        string `json:"name,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Cells       int    `json:"cells"`
	Constraints int    `json:"constraints"`
}

// Estimate captures the pre-search cost model for both strategies.
// Choice counts are decimal strings since they routinely exceed 64
// bits.
type Estimate struct {
	BruteChoices      string  `json:"bruteChoices"`
	ConstraintChoices string  `json:"constraintChoices"`
	BruteSeconds      float64 `json:"bruteSeconds"`
	ConstraintSeconds float64 `json:"constraintSeconds"`
	LocalMaskCounts   []int   `json:"localMaskCounts"`
	Feasible          bool    `json:"feasible"`
}

// Search captures what the chosen strategy found. Solution is the
// activation bit pattern in hex; Grid is the rendered solved board.
// Both are empty unless the outcome is solved.
type Search struct {
	Tries    uint64 `json:"tries"`
	Index    uint64 `json:"index"`
	Solution string `json:"solution,omitempty"`
	Grid     string `json:"grid,omitempty"`
}

// FromReport builds a results document from a solve report.
func FromReport(name string, p *puzzle.Puzzle, rep *solver.Report) *Results {
	res := &Results{
		Version: SchemaVersion,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			Strategy:    rep.Strategy.String(),
			Outcome:     rep.Outcome.String(),
			ComputeTime: rep.Elapsed.Seconds(),
		},
		Model: Model{
			Name:        name,
			Width:       p.Width,
			Height:      p.Height,
			Cells:       len(p.Cells),
			Constraints: len(p.Constraints),
		},
		Estimate: Estimate{
			BruteChoices:      rep.Estimate.BruteChoices.String(),
			ConstraintChoices: rep.Estimate.ConstraintChoices.String(),
			BruteSeconds:      rep.Estimate.BruteSeconds,
			ConstraintSeconds: rep.Estimate.ConstraintSeconds,
			LocalMaskCounts:   rep.Estimate.LocalMaskCounts,
			Feasible:          rep.Estimate.Feasible,
		},
	}

	if rep.Outcome != solver.OutcomeAbortedTooCostly {
		res.Search = &Search{
			Tries: rep.Tries,
			Index: rep.Index,
		}
		if rep.Outcome == solver.OutcomeSolved {
			res.Search.Solution = rep.Solution.Hex()
			res.Search.Grid = visualization.RenderText(p, rep.State)
		}
	}
	return res
}
