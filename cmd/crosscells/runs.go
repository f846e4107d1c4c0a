package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-crosscells/solver"
	"github.com/pflow-xyz/go-crosscells/storage"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite database to read")
	limit := fs.Int("limit", 20, "Maximum number of runs to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: crosscells runs [options]

List recorded solve runs, newest first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	list, err := store.ListRuns(*limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, run := range list {
		fmt.Printf("%s  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID)
		fmt.Printf("  %s  %dx%d, %d cells, %d constraints\n",
			run.Puzzle, run.Width, run.Height, run.Cells, run.Constraints)
		fmt.Printf("  %s via %s, %d tries (%s)",
			run.Outcome, run.Strategy, run.Tries,
			solver.FormatSeconds(run.ElapsedSecs))
		if run.Solution != "" {
			fmt.Printf(", solution %s", run.Solution)
		}
		fmt.Println()
		fmt.Println()
	}
	return nil
}
