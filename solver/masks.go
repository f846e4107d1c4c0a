package solver

import (
	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// combineMasks walks the cartesian product of the per-constraint mask
// lists, ORing each combination's Bits and Inv words together. A
// combination is globally consistent exactly when the XOR of the two
// accumulated words sets every cell bit: every cell decided once,
// none contradicted, none left open. Traversal is lexicographic in
// constraint declaration order with the first constraint varying
// slowest, so the try index of a hit is deterministic.
func (s *Solver) combineMasks(masks [][]puzzle.Mask, rep *Report) {
	// An empty mask list makes the whole product empty: some
	// constraint has no satisfying local pattern at all.
	for _, list := range masks {
		if len(list) == 0 {
			rep.Outcome = OutcomeExhausted
			return
		}
	}

	allOnes := s.puzzle.AllOnes()
	idx := make([]int, len(masks))
	var (
		tries uint64
		total uint256.Int
		inv   uint256.Int
		mixed uint256.Int
	)

	for {
		total.Clear()
		inv.Clear()
		for i, j := range idx {
			m := &masks[i][j]
			total.Or(&total, &m.Bits)
			inv.Or(&inv, &m.Inv)
		}
		tries++

		if mixed.Xor(&total, &inv).Eq(allOnes) {
			state := s.puzzle.NewState()
			state.SetFromBits(&total)
			rep.Outcome = OutcomeSolved
			rep.Index = tries - 1
			rep.Tries = tries
			rep.State = state
			rep.Solution = new(uint256.Int).Set(&total)
			return
		}

		// Odometer increment, rightmost list fastest.
		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(masks[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	rep.Outcome = OutcomeExhausted
	rep.Tries = tries
}
