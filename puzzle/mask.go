package puzzle

import "github.com/holiman/uint256"

// MaxCells is the largest cell count a puzzle may hold. Masks and
// solution words are 256-bit, one bit per global cell index. Both
// search strategies are infeasible long before this bound matters.
const MaxCells = 256

// State is the global activation buffer, indexed by cell id. It is the
// only mutable piece of a puzzle; constraints and masks read or write
// it explicitly instead of aliasing per-cell flags.
type State []bool

// NewState returns an all-inactive buffer for n cells.
func NewState(n int) State {
	return make(State, n)
}

// Clone returns an independent copy of the buffer.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Reset marks every cell inactive.
func (s State) Reset() {
	for i := range s {
		s[i] = false
	}
}

// CountActive returns the number of active cells.
func (s State) CountActive() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

// SetFromBits sets cell i active iff bit i of bits is set.
func (s State) SetFromBits(bits *uint256.Int) {
	for i := range s {
		s[i] = bitSet(bits, i)
	}
}

// Bits packs the buffer into a word, bit i for cell i.
func (s State) Bits() *uint256.Int {
	out := new(uint256.Int)
	for i, on := range s {
		if on && i < MaxCells {
			out[i/64] |= 1 << (uint(i) % 64)
		}
	}
	return out
}

// Mask records one locally valid activation pattern for a constraint.
// Bits has a bit set for every cell the pattern requires active, Inv
// for every cell it requires inactive. Both are addressed by global
// cell index, so masks from different constraints combine with plain
// bitwise ops. A well-formed pair covers exactly the constraint's own
// cells, each recorded once: Bits & Inv == 0.
type Mask struct {
	Bits uint256.Int
	Inv  uint256.Int
}

// WellFormed reports whether no cell is recorded both active and
// inactive.
func (m *Mask) WellFormed() bool {
	return new(uint256.Int).And(&m.Bits, &m.Inv).IsZero()
}

// Coverage returns the set of global cell bits this mask decides.
func (m *Mask) Coverage() *uint256.Int {
	return new(uint256.Int).Or(&m.Bits, &m.Inv)
}

// Apply writes the pattern into the state buffer: cells under Bits
// become active, cells under Inv inactive. Cells outside the mask's
// coverage are untouched.
func (m *Mask) Apply(s State) {
	for i := range s {
		if bitSet(&m.Bits, i) {
			s[i] = true
		} else if bitSet(&m.Inv, i) {
			s[i] = false
		}
	}
}

// setBit sets bit i of x in place.
func setBit(x *uint256.Int, i int) {
	if i >= 0 && i < MaxCells {
		x[i/64] |= 1 << (uint(i) % 64)
	}
}

// bitSet reports whether bit i of x is set. uint256.Int is a little-
// endian [4]uint64, so the limb index is i/64.
func bitSet(x *uint256.Int, i int) bool {
	if i < 0 || i >= MaxCells {
		return false
	}
	return x[i/64]>>(uint(i)%64)&1 == 1
}

// AllOnes returns the word with the low n bits set: the consistency
// target for combined masks over an n-cell puzzle.
func AllOnes(n int) *uint256.Int {
	out := new(uint256.Int)
	if n <= 0 {
		return out
	}
	if n >= MaxCells {
		return out.Not(out)
	}
	one := uint256.NewInt(1)
	out.Lsh(one, uint(n))
	return out.Sub(out, one)
}
