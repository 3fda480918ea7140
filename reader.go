package simplex

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseProblem reads a linear program from a small plain-text format:
//
//	# lines starting with # are comments
//	max 12 16
//	1 2 40
//	1 1 30
//
// The first data line is "max" or "min" followed by the objective
// coefficients, one per variable. Every following line is one constraint:
// the variable coefficients and the RHS last. Constraints are "≤ rhs" for
// max problems and "≥ rhs" for min problems. Blank lines and comments are
// skipped.
//
// Structural problems (unknown sense, ragged rows, no constraints) are
// reported as ErrMalformedInput when Solve or InitialTableau is called on
// the returned problem; unparseable numbers are reported here with their
// line number.
func ParseProblem(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)

	var p *Problem
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if p == nil {
			// objective line
			switch strings.ToLower(fields[0]) {
			case "max", "maximize":
				p = NewMaximize()
			case "min", "minimize":
				p = NewMinimize()
			default:
				return nil, errors.Errorf("line %d: expected \"max\" or \"min\", got %q", lineNo, fields[0])
			}
			if len(fields) == 1 {
				return nil, errors.Errorf("line %d: objective needs at least one coefficient", lineNo)
			}
			for _, f := range fields[1:] {
				coef, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: bad objective coefficient %q", lineNo, f)
				}
				p.AddVariable("", coef)
			}
			continue
		}

		// constraint line: coefficients then RHS
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad constraint value %q", lineNo, f)
			}
			vals[i] = v
		}
		if len(vals) != len(p.variables)+1 {
			return nil, errors.Errorf("line %d: expected %d coefficients and a RHS, got %d values",
				lineNo, len(p.variables), len(vals))
		}
		exprs := make([]expression, len(p.variables))
		for i, v := range p.variables {
			exprs[i] = Expr(vals[i], v)
		}
		p.AddConstraint(vals[len(vals)-1], exprs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading problem")
	}
	if p == nil {
		return nil, errors.New("empty problem description")
	}

	return p, nil
}

// ReadProblemFile parses a problem from the named file.
func ReadProblemFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	p, err := ParseProblem(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return p, nil
}
