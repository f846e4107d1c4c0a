package solver

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// bruteForce enumerates integers 0..2^N-1, bit b of the integer
// driving cell b, and checks every constraint in declaration order,
// short-circuiting on the first failure. The first satisfying integer
// becomes the solution. This only ever runs when the estimator priced
// the space under the abort threshold, so the count fits comfortably
// in a uint64.
func (s *Solver) bruteForce(rep *Report) {
	choices := uint64(1) << uint(len(s.puzzle.Cells))
	if s.workers > 1 {
		s.bruteForceParallel(rep, choices)
		return
	}

	state := s.puzzle.NewState()
	for num := uint64(0); num < choices; num++ {
		setFromUint64(state, num)
		if s.puzzle.Check(state) {
			rep.Outcome = OutcomeSolved
			rep.Index = num
			rep.Tries = num + 1
			rep.State = state
			rep.Solution = state.Bits()
			return
		}
	}
	rep.Outcome = OutcomeExhausted
	rep.Tries = choices
}

// bruteForceParallel partitions the pattern space into contiguous
// chunks, one per worker, each with its own activation buffer.
// Cancellation is cooperative: workers poll a shared found flag
// between iterations. The solution reported is whichever worker's hit
// lands first, not necessarily the lowest-numbered pattern.
func (s *Solver) bruteForceParallel(rep *Report, choices uint64) {
	workers := uint64(s.workers)
	if workers > choices {
		workers = choices
	}
	chunk := choices / workers

	var (
		found    atomic.Bool
		mu       sync.Mutex
		examined atomic.Uint64
	)

	var g errgroup.Group
	for w := uint64(0); w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = choices
		}
		g.Go(func() error {
			state := puzzle.NewState(len(s.puzzle.Cells))
			for num := start; num < end; num++ {
				if num%1024 == 0 && found.Load() {
					return nil
				}
				examined.Add(1)
				setFromUint64(state, num)
				if !s.puzzle.Check(state) {
					continue
				}
				if found.CompareAndSwap(false, true) {
					mu.Lock()
					rep.Outcome = OutcomeSolved
					rep.Index = num
					rep.Tries = examined.Load()
					rep.State = state
					rep.Solution = state.Bits()
					mu.Unlock()
				}
				return nil
			}
			return nil
		})
	}
	g.Wait()

	if !found.Load() {
		rep.Outcome = OutcomeExhausted
		rep.Tries = choices
	}
}

// setFromUint64 drives the buffer from the low bits of num. Only used
// by the whole-board scan, where the cell count fits in a word.
func setFromUint64(state puzzle.State, num uint64) {
	for i := range state {
		state[i] = num>>uint(i)&1 == 1
	}
}
