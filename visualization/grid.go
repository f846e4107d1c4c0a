// Package visualization renders CrossCells grids as text and SVG.
package visualization

import (
	"fmt"
	"os"
	"strings"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// RenderText renders the grid row by row: each cell as its operator
// symbol plus right-padded value when active, "---" when inactive,
// and three spaces for an empty position. Every position is followed
// by a single space, matching the terminal report layout.
func RenderText(p *puzzle.Puzzle, state puzzle.State) string {
	var b strings.Builder
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if cell := p.Grid[y][x]; cell != nil {
				b.WriteString(cell.Label(state[cell.Index]))
			} else {
				b.WriteString("   ")
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SVG layout constants.
const (
	cellSize = 48
	cellGap  = 6
	margin   = 16
)

// RenderSVG renders the grid as an SVG document. Active cells are
// filled, inactive cells dimmed, empty positions left blank.
func RenderSVG(p *puzzle.Puzzle, state puzzle.State) string {
	width := margin*2 + p.Width*cellSize + (p.Width-1)*cellGap
	height := margin*2 + p.Height*cellSize + (p.Height-1)*cellGap

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height))
	b.WriteString(fmt.Sprintf(
		`  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height))

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			cell := p.Grid[y][x]
			if cell == nil {
				continue
			}
			px := margin + x*(cellSize+cellGap)
			py := margin + y*(cellSize+cellGap)

			fill, stroke, textFill := "#e8e8e8", "#bbbbbb", "#888888"
			if state[cell.Index] {
				fill, stroke, textFill = "#d1f0d1", "#2e8b57", "#1a5c38"
			}

			b.WriteString(fmt.Sprintf(
				`  <rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" stroke="%s"/>`+"\n",
				px, py, cellSize, cellSize, fill, stroke))
			b.WriteString(fmt.Sprintf(
				`  <text x="%d" y="%d" font-family="monospace" font-size="16" text-anchor="middle" fill="%s">%s%d</text>`+"\n",
				px+cellSize/2, py+cellSize/2+6, textFill,
				escape(cell.Op.Symbol()), cell.Value))
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// SaveSVG renders the grid to SVG and writes it to a file.
func SaveSVG(p *puzzle.Puzzle, state puzzle.State, filename string) error {
	return os.WriteFile(filename, []byte(RenderSVG(p, state)), 0644)
}

// escape performs minimal escaping for SVG text content.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
