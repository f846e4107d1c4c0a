package puzzle

import (
	"fmt"
	"math/bits"
)

// Kind identifies what a constraint enforces over its line of cells.
type Kind int

const (
	// KindTotal requires the active cells, folded in declared order
	// starting from 0, to reach an exact total.
	KindTotal Kind = iota
	// KindCount requires an exact number of active cells.
	KindCount
)

// String returns a readable name for the constraint kind.
func (k Kind) String() string {
	switch k {
	case KindTotal:
		return "total"
	case KindCount:
		return "count"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constraint enforces a total or count over an ordered line of cells.
// Cells are shared with the puzzle's rows, columns and grid; the
// constraint reads their identity and values but never their state,
// which always comes in through an explicit State buffer.
type Constraint struct {
	Kind   Kind
	Target int64
	Cells  []*Cell
}

// Check reports whether the constraint holds under the given
// activation state. Pure: no buffer is mutated.
func (c *Constraint) Check(state State) bool {
	switch c.Kind {
	case KindCount:
		count := int64(0)
		for _, cell := range c.Cells {
			if state[cell.Index] {
				count++
			}
		}
		return count == c.Target
	default:
		total := int64(0)
		for _, cell := range c.Cells {
			if state[cell.Index] {
				total = cell.Apply(total)
			}
		}
		return total == c.Target
	}
}

// PatternSatisfied reports whether a local activation pattern of this
// constraint's own k cells satisfies it. Bit b of the pattern drives
// the b-th declared cell; the fold runs in declared order. Local
// patterns depend only on the constraint's shape (kind, target and
// operator/value sequence), never on where its cells sit in the grid.
func (c *Constraint) PatternSatisfied(pattern uint64) bool {
	switch c.Kind {
	case KindCount:
		return int64(bits.OnesCount64(pattern)) == c.Target
	default:
		total := int64(0)
		for bit, cell := range c.Cells {
			if pattern>>uint(bit)&1 == 1 {
				total = cell.Apply(total)
			}
		}
		return total == c.Target
	}
}

// SatisfyingPatterns brute-forces all 2^k local patterns in increasing
// numeric order and returns the ones that satisfy the constraint.
func (c *Constraint) SatisfyingPatterns() []uint64 {
	var patterns []uint64
	choices := uint64(1) << uint(len(c.Cells))
	for pattern := uint64(0); pattern < choices; pattern++ {
		if c.PatternSatisfied(pattern) {
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}

// MasksFromPatterns maps local patterns to global Mask pairs: each
// cell's global bit lands in Bits when its pattern bit is set, in Inv
// otherwise, so every mask covers exactly this constraint's cells.
func (c *Constraint) MasksFromPatterns(patterns []uint64) []Mask {
	masks := make([]Mask, 0, len(patterns))
	for _, pattern := range patterns {
		var m Mask
		for bit, cell := range c.Cells {
			if pattern>>uint(bit)&1 == 1 {
				setBit(&m.Bits, cell.Index)
			} else {
				setBit(&m.Inv, cell.Index)
			}
		}
		masks = append(masks, m)
	}
	return masks
}

// LocalMasks enumerates the constraint's satisfying local patterns and
// returns them as global Mask pairs, in increasing pattern order.
func (c *Constraint) LocalMasks() []Mask {
	return c.MasksFromPatterns(c.SatisfyingPatterns())
}
