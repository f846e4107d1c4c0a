package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/pflow-xyz/go-crosscells/parser"
	"github.com/pflow-xyz/go-crosscells/results"
	"github.com/pflow-xyz/go-crosscells/solver"
	"github.com/pflow-xyz/go-crosscells/storage"
	"github.com/pflow-xyz/go-crosscells/visualization"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	saveOutput := fs.String("save", "", "Save run results JSON to file")
	dbPath := fs.String("db", "", "Record the run in a SQLite database")
	svgOutput := fs.String("svg", "", "Save the solved grid as SVG")
	workers := fs.Int("workers", 1, "Parallel workers for whole-board enumeration")
	bruteRate := fs.Float64("brute-rate", solver.DefaultBruteRate,
		"Assumed whole-board patterns per second")
	constraintRate := fs.Float64("constraint-rate", solver.DefaultConstraintRate,
		"Assumed mask combinations per second")
	threshold := fs.Float64("abort-threshold", solver.DefaultAbortThreshold,
		"Estimated-seconds ceiling before the solve is refused")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: crosscells solve <puzzle.txt> [options]

Solve a puzzle definition: estimate both strategies, run the cheaper
one, and report the outcome.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Solve and print the grid
  crosscells solve level25.txt

  # Solve with four workers and keep the run on record
  crosscells solve level25.txt --workers 4 --db runs.db

  # Save machine-readable results
  crosscells solve level25.txt --save run.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}
	file := fs.Arg(0)

	p, err := parser.ParseFile(file)
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	rep := solver.New(p).
		WithBruteRate(*bruteRate).
		WithConstraintRate(*constraintRate).
		WithAbortThreshold(*threshold).
		WithWorkers(*workers).
		Solve()

	fmt.Println()
	fmt.Println(rep.Estimate.Describe())
	fmt.Println()

	switch rep.Outcome {
	case solver.OutcomeAbortedTooCostly:
		fmt.Println("Aborting solving - need a better method for this level.")
		fmt.Println()

	case solver.OutcomeSolved:
		fmt.Printf("Solving by %s\n\n", rep.Strategy)
		fmt.Printf("Found solution on try %s (%s):\n\n",
			humanize.Comma(int64(rep.Tries)),
			solver.FormatSeconds(rep.Elapsed.Seconds()))
		fmt.Print(visualization.RenderText(p, rep.State))
		fmt.Println()

	default:
		fmt.Printf("Solving by %s\n\n", rep.Strategy)
		fmt.Printf("No solution found after %s tries (%s).\n\n",
			humanize.Comma(int64(rep.Tries)),
			solver.FormatSeconds(rep.Elapsed.Seconds()))
	}

	if *saveOutput != "" {
		res := results.FromReport(file, p, rep)
		if err := results.WriteJSON(res, *saveOutput); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", *saveOutput)
	}

	if *dbPath != "" {
		store, err := storage.Open(*dbPath)
		if err != nil {
			return fmt.Errorf("open run database: %w", err)
		}
		defer store.Close()
		id, err := store.RecordRun(file, p.Width, p.Height,
			len(p.Cells), len(p.Constraints), rep)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Recorded run %s\n", id)
	}

	if *svgOutput != "" && rep.Outcome == solver.OutcomeSolved {
		if err := visualization.SaveSVG(p, rep.State, *svgOutput); err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved grid to %s\n", *svgOutput)
	}

	return nil
}
