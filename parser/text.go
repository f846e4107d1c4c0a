// Package parser loads CrossCells puzzle definitions from their
// line-oriented text format.
//
// A definition has three sections:
//
//	WIDTHxHEIGHT
//	X,Y: +N or X,Y: *N   (cells, terminated by a line of exactly "--")
//	POSITION: DEFINITION (constraints, until end of input)
//
// Constraint positions are either a grid line token
// (row_<n>, col_<n>, rowrev_<n>, colrev_<n>) paired with total_<N> or
// count_<N>, or total_<N> / count_<N> paired with an explicit
// space-separated list of X,Y coordinates. Blank lines and lines
// starting with "#" are skipped everywhere.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// ParseFile reads a puzzle definition from disk.
func ParseFile(path string) (*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads a puzzle definition from r.
func Parse(r io.Reader) (*puzzle.Puzzle, error) {
	sc := &sectionScanner{scanner: bufio.NewScanner(r)}

	p, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}
	if err := parseCells(sc, p); err != nil {
		return nil, err
	}
	if err := parseConstraints(sc, p); err != nil {
		return nil, err
	}
	return p, nil
}

// sectionScanner yields trimmed lines with blanks and comments
// skipped, tracking line numbers for error messages.
type sectionScanner struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next meaningful line. ok is false at end of input.
func (s *sectionScanner) next() (text string, ok bool) {
	for s.scanner.Scan() {
		s.line++
		text = strings.TrimSpace(s.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return text, true
	}
	return "", false
}

func (s *sectionScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", s.line, fmt.Sprintf(format, args...))
}

func parseHeader(sc *sectionScanner) (*puzzle.Puzzle, error) {
	line, ok := sc.next()
	if !ok {
		return nil, fmt.Errorf("empty puzzle definition")
	}
	dims := strings.SplitN(line, "x", 2)
	if len(dims) != 2 {
		return nil, sc.errorf("expected WIDTHxHEIGHT, got %q", line)
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, sc.errorf("bad width %q: %v", dims[0], err)
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, sc.errorf("bad height %q: %v", dims[1], err)
	}
	if width <= 0 || height <= 0 {
		return nil, sc.errorf("dimensions must be positive, got %dx%d", width, height)
	}
	return puzzle.New(width, height), nil
}

func parseCells(sc *sectionScanner, p *puzzle.Puzzle) error {
	for {
		line, ok := sc.next()
		if !ok {
			return fmt.Errorf("missing %q cell section terminator", "--")
		}
		if line == "--" {
			return nil
		}

		coords, def, found := strings.Cut(line, ": ")
		if !found {
			return sc.errorf("expected %q in cell line %q", "X,Y: OPVALUE", line)
		}
		at, err := parseCoord(coords)
		if err != nil {
			return sc.errorf("bad cell coordinates: %v", err)
		}
		if def == "" {
			return sc.errorf("empty cell definition at (%d,%d)", at.X, at.Y)
		}

		var op puzzle.Op
		switch def[0] {
		case '+':
			op = puzzle.OpAdd
		case '*':
			op = puzzle.OpMultiply
		default:
			return sc.errorf("unknown cell prefix %q", string(def[0]))
		}
		value, err := strconv.ParseInt(def[1:], 10, 64)
		if err != nil {
			return sc.errorf("bad cell value %q: %v", def[1:], err)
		}

		if _, err := p.AddCell(at.X, at.Y, op, value); err != nil {
			return sc.errorf("%v", err)
		}
	}
}

func parseConstraints(sc *sectionScanner, p *puzzle.Puzzle) error {
	for {
		line, ok := sc.next()
		if !ok {
			return nil
		}

		positiondef, constraintdef, found := strings.Cut(line, ": ")
		if !found {
			return sc.errorf("expected %q in constraint line %q", "POSITION: DEFINITION", line)
		}
		postype, posnumStr, found := strings.Cut(positiondef, "_")
		if !found {
			return sc.errorf("bad constraint position %q", positiondef)
		}
		posnum, err := strconv.ParseInt(posnumStr, 10, 64)
		if err != nil {
			return sc.errorf("bad constraint position number %q: %v", posnumStr, err)
		}

		switch postype {
		case "total", "count":
			// Position token holds the target; the definition is an
			// explicit coordinate list.
			kind := puzzle.KindTotal
			if postype == "count" {
				kind = puzzle.KindCount
			}
			var coords []puzzle.Coord
			for _, field := range strings.Fields(constraintdef) {
				at, err := parseCoord(field)
				if err != nil {
					return sc.errorf("bad constraint coordinates: %v", err)
				}
				coords = append(coords, at)
			}
			if _, err := p.AddCellsConstraint(kind, posnum, coords); err != nil {
				return sc.errorf("%v", err)
			}

		case "row", "col", "rowrev", "colrev":
			constype, consnumStr, found := strings.Cut(constraintdef, "_")
			if !found {
				return sc.errorf("bad constraint definition %q", constraintdef)
			}
			var kind puzzle.Kind
			switch constype {
			case "total":
				kind = puzzle.KindTotal
			case "count":
				kind = puzzle.KindCount
			default:
				return sc.errorf("unknown constraint type %q", constype)
			}
			target, err := strconv.ParseInt(consnumStr, 10, 64)
			if err != nil {
				return sc.errorf("bad constraint target %q: %v", consnumStr, err)
			}
			line := lineFor(postype)
			if _, err := p.AddLineConstraint(line, int(posnum), kind, target); err != nil {
				return sc.errorf("%v", err)
			}

		default:
			return sc.errorf("unknown constraint positioning %q", postype)
		}
	}
}

func lineFor(postype string) puzzle.Line {
	switch postype {
	case "col":
		return puzzle.LineCol
	case "rowrev":
		return puzzle.LineRowRev
	case "colrev":
		return puzzle.LineColRev
	default:
		return puzzle.LineRow
	}
}

func parseCoord(s string) (puzzle.Coord, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return puzzle.Coord{}, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return puzzle.Coord{}, fmt.Errorf("bad x %q: %v", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return puzzle.Coord{}, fmt.Errorf("bad y %q: %v", ys, err)
	}
	return puzzle.Coord{X: x, Y: y}, nil
}
