package solver

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// Throughput defaults, in possibilities per second. These came from
// benchmarking the two search loops on a desktop CPU; absolute
// estimates vary by machine, but the ratio between them tends to hold,
// which is what the strategy choice depends on. Override per host with
// WithBruteRate / WithConstraintRate.
const (
	DefaultBruteRate      = 2_160_000
	DefaultConstraintRate = 7_100_000

	// DefaultAbortThreshold is the estimated-seconds ceiling (one
	// hour) beyond which no search is attempted.
	DefaultAbortThreshold = 60 * 60
)

// Estimate sizes both search spaces and prices them in wall-clock
// seconds. It is a pure function of the puzzle's cell count, the
// per-constraint local-mask counts and the configured rates. Choice
// counts are big integers because they are reported even for puzzles
// whose search would take centuries.
type Estimate struct {
	Cells       int
	Constraints int

	// LocalMaskCounts holds each constraint's valid-mask count in
	// declaration order. Any zero makes the puzzle unsatisfiable by
	// the by-constraint method.
	LocalMaskCounts []int

	BruteChoices      *big.Int
	ConstraintChoices *big.Int
	BruteSeconds      float64
	ConstraintSeconds float64

	// Strategy is the cheaper of the two searches. Feasible is false
	// when even that one exceeds the abort threshold.
	Strategy Strategy
	Feasible bool
}

func (s *Solver) estimateFrom(masks [][]puzzle.Mask) *Estimate {
	e := &Estimate{
		Cells:           len(s.puzzle.Cells),
		Constraints:     len(s.puzzle.Constraints),
		LocalMaskCounts: make([]int, len(masks)),
	}

	e.BruteChoices = new(big.Int).Lsh(big.NewInt(1), uint(e.Cells))
	e.ConstraintChoices = big.NewInt(1)
	for i, list := range masks {
		e.LocalMaskCounts[i] = len(list)
		e.ConstraintChoices.Mul(e.ConstraintChoices, big.NewInt(int64(len(list))))
	}

	e.BruteSeconds = secondsFor(e.BruteChoices, s.bruteRate)
	e.ConstraintSeconds = secondsFor(e.ConstraintChoices, s.constraintRate)

	// Strict comparison: the whole-board scan wins ties.
	if e.ConstraintSeconds < e.BruteSeconds {
		e.Strategy = StrategyByConstraint
	} else {
		e.Strategy = StrategyBruteForce
	}
	e.Feasible = min(e.BruteSeconds, e.ConstraintSeconds) <= s.abortThreshold
	return e
}

// secondsFor prices a choice count at a fixed rate. Counts beyond
// float64 range collapse to +Inf, which still orders correctly.
func secondsFor(choices *big.Int, perSecond float64) float64 {
	f, _ := new(big.Float).SetInt(choices).Float64()
	return f / perSecond
}

// Describe renders the pre-search report: cell and constraint counts,
// both possibility counts with thousands separators, and both
// estimated durations.
func (e *Estimate) Describe() string {
	return fmt.Sprintf(
		"Solving for puzzle with %d cells, %d constraints\n"+
			"  Whole-board brute force possibilities: %s (%s)\n"+
			"            By-constraint possibilities: %s (%s)",
		e.Cells, e.Constraints,
		FormatCount(e.BruteChoices), FormatSeconds(e.BruteSeconds),
		FormatCount(e.ConstraintChoices), FormatSeconds(e.ConstraintSeconds))
}

// FormatCount renders a choice count with thousands separators.
func FormatCount(n *big.Int) string {
	return humanize.BigComma(new(big.Int).Set(n))
}

// FormatSeconds renders a duration as a compact two-unit chain,
// climbing seconds, minutes, hours, days, weeks and years with caps of
// 60, 60, 24, 7 and 52 respectively: "45s", "3m20s", "26w6d",
// "530y19w".
// Estimates can exceed uint64 range (centuries of centuries), so the
// chain is computed in float64 and printed without a fraction.
func FormatSeconds(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%.0fs", math.Floor(seconds))
	}
	minutes, secs := divmod(seconds, 60)
	if minutes < 60 {
		return fmt.Sprintf("%.0fm%.0fs", minutes, secs)
	}
	hours, minutes := divmod(minutes, 60)
	if hours < 24 {
		return fmt.Sprintf("%.0fh%.0fm", hours, minutes)
	}
	days, hours := divmod(hours, 24)
	if days < 7 {
		return fmt.Sprintf("%.0fd%.0fh", days, hours)
	}
	weeks, days := divmod(days, 7)
	if weeks < 52 {
		return fmt.Sprintf("%.0fw%.0fd", weeks, days)
	}
	years, weeks := divmod(weeks, 52)
	return fmt.Sprintf("%.0fy%.0fw", years, weeks)
}

func divmod(v, by float64) (quo, rem float64) {
	quo = math.Floor(v / by)
	rem = math.Floor(v - quo*by)
	return quo, rem
}
