package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-crosscells/parser"
	"github.com/pflow-xyz/go-crosscells/solver"
)

func estimate(args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	bruteRate := fs.Float64("brute-rate", solver.DefaultBruteRate,
		"Assumed whole-board patterns per second")
	constraintRate := fs.Float64("constraint-rate", solver.DefaultConstraintRate,
		"Assumed mask combinations per second")
	threshold := fs.Float64("abort-threshold", solver.DefaultAbortThreshold,
		"Estimated-seconds ceiling before a solve would be refused")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: crosscells estimate <puzzle.txt> [options]

Size both search spaces and report which strategy a solve would run,
without searching.

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

	est := solver.New(p).
		WithBruteRate(*bruteRate).
		WithConstraintRate(*constraintRate).
		WithAbortThreshold(*threshold).
		Estimate()

	fmt.Println()
	fmt.Println(est.Describe())
	fmt.Println()
	if est.Feasible {
		fmt.Printf("Would solve by %s.\n", est.Strategy)
	} else {
		fmt.Println("Both strategies exceed the abort threshold; a solve would be refused.")
	}
	return nil
}
