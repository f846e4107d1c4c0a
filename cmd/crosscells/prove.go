package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-crosscells/parser"
	"github.com/pflow-xyz/go-crosscells/prover"
	"github.com/pflow-xyz/go-crosscells/solver"
	"github.com/pflow-xyz/go-crosscells/visualization"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	workers := fs.Int("workers", 1, "Parallel workers for whole-board enumeration")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: crosscells prove <puzzle.txt> [options]

Solve a puzzle, then produce and verify a Groth16 proof that the
solution satisfies every constraint, without revealing which cells are
active. The constraint targets are the only public inputs.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	p, err := parser.ParseFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	rep := solver.New(p).WithWorkers(*workers).Solve()
	if rep.Outcome != solver.OutcomeSolved {
		return fmt.Errorf("cannot prove: %s", rep.Outcome)
	}
	fmt.Printf("Found solution on try %d (%s):\n\n",
		rep.Tries, solver.FormatSeconds(rep.Elapsed.Seconds()))
	fmt.Print(visualization.RenderText(p, rep.State))
	fmt.Println()

	pr := prover.New(p)
	fmt.Println("Compiling circuit and running setup...")
	if err := pr.Compile(); err != nil {
		return fmt.Errorf("compile circuit: %w", err)
	}
	fmt.Printf("Circuit compiled: %d constraints\n", pr.Constraints())

	proof, err := pr.Prove(rep.State)
	if err != nil {
		return fmt.Errorf("generate proof: %w", err)
	}
	if err := pr.Verify(proof); err != nil {
		return fmt.Errorf("verify proof: %w", err)
	}
	fmt.Println("Proof generated and verified.")
	return nil
}
