// Package solver implements the two CrossCells search strategies and
// the cost model that picks between them.
//
// The whole-board strategy enumerates every global activation pattern
// directly. The by-constraint strategy first enumerates each
// constraint's locally valid masks, then walks the cartesian product
// of those mask lists looking for a bitwise-consistent combination.
// Before searching, the solver estimates the wall-clock cost of both
// strategies from fixed throughput constants and runs the cheaper one,
// or reports the puzzle as too costly without searching at all.
package solver

import (
	"fmt"
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-crosscells/cache"
	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// Outcome is the terminal result of a solve attempt.
type Outcome int

const (
	// OutcomeUnsolved is the initial state; no search has finished.
	OutcomeUnsolved Outcome = iota
	// OutcomeSolved means a satisfying assignment was found.
	OutcomeSolved
	// OutcomeExhausted means the chosen strategy ran to completion
	// without finding a solution.
	OutcomeExhausted
	// OutcomeAbortedTooCostly means both strategies were estimated
	// over the abort threshold and no search was attempted.
	OutcomeAbortedTooCostly
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnsolved:
		return "unsolved"
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeAbortedTooCostly:
		return "aborted-too-costly"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Terminal reports whether the outcome ends a solve attempt.
func (o Outcome) Terminal() bool {
	return o != OutcomeUnsolved
}

// Strategy identifies which search the solver runs.
type Strategy int

const (
	// StrategyBruteForce enumerates all 2^N global patterns.
	StrategyBruteForce Strategy = iota
	// StrategyByConstraint combines per-constraint valid masks.
	StrategyByConstraint
)

// String returns a readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyByConstraint:
		return "by-constraint"
	default:
		return "whole-board bruteforce"
	}
}

// Solver runs the strategy selection and search for one puzzle.
// Configure with the WithX methods before calling Solve; a zero
// configuration uses the default rates and threshold.
type Solver struct {
	puzzle *puzzle.Puzzle

	bruteRate      float64
	constraintRate float64
	abortThreshold float64
	workers        int
	patterns       *cache.PatternCache
}

// New creates a solver for the puzzle with default configuration.
func New(p *puzzle.Puzzle) *Solver {
	return &Solver{
		puzzle:         p,
		bruteRate:      DefaultBruteRate,
		constraintRate: DefaultConstraintRate,
		abortThreshold: DefaultAbortThreshold,
		workers:        1,
		patterns:       cache.NewPatternCache(0),
	}
}

// WithBruteRate overrides the assumed whole-board patterns-per-second
// throughput. The rates are calibration constants, not measured.
func (s *Solver) WithBruteRate(perSecond float64) *Solver {
	s.bruteRate = perSecond
	return s
}

// WithConstraintRate overrides the assumed mask-combinations-per-second
// throughput.
func (s *Solver) WithConstraintRate(perSecond float64) *Solver {
	s.constraintRate = perSecond
	return s
}

// WithAbortThreshold overrides the estimated-seconds ceiling above
// which the solver refuses to search.
func (s *Solver) WithAbortThreshold(seconds float64) *Solver {
	s.abortThreshold = seconds
	return s
}

// WithPatternCache shares a pattern cache across solvers, so repeated
// constraint shapes in different puzzles reuse one enumeration.
func (s *Solver) WithPatternCache(c *cache.PatternCache) *Solver {
	if c != nil {
		s.patterns = c
	}
	return s
}

// WithWorkers enables parallel whole-board enumeration across n
// goroutines. With n > 1 the search returns some satisfying
// assignment, not necessarily the lowest-numbered one; the default of
// one worker keeps the deterministic canonical-order scan.
func (s *Solver) WithWorkers(n int) *Solver {
	if n < 1 {
		n = 1
	}
	s.workers = n
	return s
}

// Report is the outcome of one solve attempt.
type Report struct {
	Outcome  Outcome
	Strategy Strategy
	Estimate *Estimate

	// Tries counts patterns or combinations examined, 1-based.
	// Index is the 0-based enumeration position of the solution;
	// for the whole-board strategy it is also the solution's bit
	// pattern as an integer. Both are zero unless a search ran.
	Tries uint64
	Index uint64

	Elapsed time.Duration

	// State and Solution are set only when Outcome is OutcomeSolved:
	// the satisfying activation buffer and its packed bit form.
	State    puzzle.State
	Solution *uint256.Int
}

// Estimate enumerates every constraint's local masks and returns the
// cost estimate for both strategies, without searching.
func (s *Solver) Estimate() *Estimate {
	return s.estimateFrom(s.localMasks())
}

// Solve runs the full pipeline: local mask enumeration, cost
// estimation, strategy choice, then the chosen search. The returned
// report always carries the estimate, even when the solve is aborted
// as too costly before any iteration.
func (s *Solver) Solve() *Report {
	masks := s.localMasks()
	est := s.estimateFrom(masks)

	rep := &Report{
		Outcome:  OutcomeUnsolved,
		Strategy: est.Strategy,
		Estimate: est,
	}
	if !est.Feasible {
		rep.Outcome = OutcomeAbortedTooCostly
		return rep
	}

	start := time.Now()
	switch est.Strategy {
	case StrategyByConstraint:
		s.combineMasks(masks, rep)
	default:
		s.bruteForce(rep)
	}
	rep.Elapsed = time.Since(start)
	return rep
}

// localMasks enumerates each constraint's valid masks in declaration
// order. Satisfying local patterns are position-independent, so they
// go through the pattern cache; only the expansion to global masks is
// per-constraint.
func (s *Solver) localMasks() [][]puzzle.Mask {
	masks := make([][]puzzle.Mask, len(s.puzzle.Constraints))
	for i, c := range s.puzzle.Constraints {
		masks[i] = c.MasksFromPatterns(s.patterns.Patterns(c))
	}
	return masks
}
