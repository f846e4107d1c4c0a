package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// Prover manages circuit compilation, trusted setup and proof
// generation for one puzzle. Compile once, then Prove for any number
// of candidate solutions.
type Prover struct {
	puzzle *puzzle.Puzzle
	curve  ecc.ID

	cs constraint.ConstraintSystem
	pk groth16.ProvingKey
	vk groth16.VerifyingKey
}

// Proof pairs a Groth16 proof with its public witness (the constraint
// targets), which the verifier needs.
type Proof struct {
	Proof  groth16.Proof
	Public witness.Witness
}

// New creates a prover for the puzzle on BN254.
func New(p *puzzle.Puzzle) *Prover {
	return &Prover{puzzle: p, curve: ecc.BN254}
}

// Compile builds the R1CS for the puzzle and runs the Groth16 setup.
// In production the setup would come from a ceremony; for local
// verification a fresh one is fine.
func (pr *Prover) Compile() error {
	cs, err := frontend.Compile(pr.curve.ScalarField(), r1cs.NewBuilder, newCircuit(pr.puzzle))
	if err != nil {
		return fmt.Errorf("circuit compilation failed: %w", err)
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	pr.cs, pr.pk, pr.vk = cs, pk, vk
	return nil
}

// Constraints returns the compiled circuit's constraint count, or
// zero before Compile.
func (pr *Prover) Constraints() int {
	if pr.cs == nil {
		return 0
	}
	return pr.cs.GetNbConstraints()
}

// Prove generates a proof that the activation state satisfies every
// puzzle constraint. A state that does not satisfy the puzzle fails
// witness solving and returns an error.
func (pr *Prover) Prove(state puzzle.State) (*Proof, error) {
	if pr.cs == nil {
		return nil, fmt.Errorf("prover not compiled")
	}

	w, err := frontend.NewWitness(assignment(pr.puzzle, state), pr.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}
	proof, err := groth16.Prove(pr.cs, pr.pk, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}
	public, err := w.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness extraction failed: %w", err)
	}
	return &Proof{Proof: proof, Public: public}, nil
}

// Verify checks a proof against the compiled circuit's verifying key.
func (pr *Prover) Verify(pf *Proof) error {
	if pr.vk == nil {
		return fmt.Errorf("prover not compiled")
	}
	return groth16.Verify(pf.Proof, pr.vk, pf.Public)
}
