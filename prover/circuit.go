// Package prover builds Groth16 proofs that a private activation
// assignment satisfies every constraint of a puzzle, without revealing
// which cells are active. The constraint targets are the public
// inputs; the activation bits stay secret.
package prover

import (
	"github.com/consensys/gnark/frontend"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// circuitCell is one cell's compile-time data inside a constraint.
type circuitCell struct {
	index    int
	multiply bool
	value    int64
}

// circuitConstraint mirrors one puzzle constraint with its cells in
// declared order.
type circuitConstraint struct {
	count bool
	cells []circuitCell
}

// Circuit proves that the Active bits satisfy every constraint.
// Active holds one secret boolean per cell, indexed by global cell id;
// Targets holds one public value per constraint, in declaration order.
// The puzzle's structure (operators, values, cell order) is baked into
// the compiled circuit.
type Circuit struct {
	Active  []frontend.Variable
	Targets []frontend.Variable `gnark:",public"`

	constraints []circuitConstraint
}

// newCircuit builds the circuit template for a puzzle. The same shape
// is used both for compilation and for witness assignments.
func newCircuit(p *puzzle.Puzzle) *Circuit {
	c := &Circuit{
		Active:      make([]frontend.Variable, len(p.Cells)),
		Targets:     make([]frontend.Variable, len(p.Constraints)),
		constraints: make([]circuitConstraint, len(p.Constraints)),
	}
	for i, cons := range p.Constraints {
		cc := circuitConstraint{count: cons.Kind == puzzle.KindCount}
		for _, cell := range cons.Cells {
			cc.cells = append(cc.cells, circuitCell{
				index:    cell.Index,
				multiply: cell.Op == puzzle.OpMultiply,
				value:    cell.Value,
			})
		}
		c.constraints[i] = cc
	}
	return c
}

// Define declares the constraint system: every activation bit is
// boolean, and each puzzle constraint's fold over the active cells
// must equal its public target.
func (c *Circuit) Define(api frontend.API) error {
	for _, bit := range c.Active {
		api.AssertIsBoolean(bit)
	}

	for i, cons := range c.constraints {
		if cons.count {
			sum := frontend.Variable(0)
			for _, cell := range cons.cells {
				sum = api.Add(sum, c.Active[cell.index])
			}
			api.AssertIsEqual(sum, c.Targets[i])
			continue
		}

		// Total: fold the operators in declared order, applying a
		// cell's operation only when its bit is set.
		total := frontend.Variable(0)
		for _, cell := range cons.cells {
			var applied frontend.Variable
			if cell.multiply {
				applied = api.Mul(total, cell.value)
			} else {
				applied = api.Add(total, cell.value)
			}
			total = api.Select(c.Active[cell.index], applied, total)
		}
		api.AssertIsEqual(total, c.Targets[i])
	}
	return nil
}

// assignment builds a witness circuit for a concrete activation state.
func assignment(p *puzzle.Puzzle, state puzzle.State) *Circuit {
	c := newCircuit(p)
	for i, on := range state {
		if on {
			c.Active[i] = 1
		} else {
			c.Active[i] = 0
		}
	}
	for i, cons := range p.Constraints {
		c.Targets[i] = cons.Target
	}
	return c
}
