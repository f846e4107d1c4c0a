package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-crosscells/parser"
	"github.com/pflow-xyz/go-crosscells/visualization"
)

func render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	svgOutput := fs.String("svg", "", "Save the grid as SVG instead of printing text")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: crosscells render <puzzle.txt> [options]

Render a puzzle's grid with every cell shown active, so the layout and
operators can be inspected before solving.

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

	state := p.NewState()
	for i := range state {
		state[i] = true
	}

	if *svgOutput != "" {
		if err := visualization.SaveSVG(p, state, *svgOutput); err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
		fmt.Printf("Saved grid to %s\n", *svgOutput)
		return nil
	}

	fmt.Printf("%dx%d grid, %d cells, %d constraints\n\n",
		p.Width, p.Height, len(p.Cells), len(p.Constraints))
	fmt.Print(visualization.RenderText(p, state))
	return nil
}
