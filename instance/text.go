package instance

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/rational"
)

// ReadTextFile reads a problem written in the text format of ParseText.
func ReadTextFile(filename string) (*model.Problem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening problem file")
	}
	defer f.Close()

	p, err := ParseText(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return p, nil
}

// ParseText reads a problem in a line-based text format. The first line
// holds the objective, every other line one constraint:
//
//	# comment
//	max 3 2
//	2 1 <= 18
//	1/2 3/4 >= 5/4
//
// Coefficients may be integers, fractions or decimals. "min" negates the
// objective.
func ParseText(r io.Reader) (*model.Problem, error) {
	p := &model.Problem{}
	seenObjective := false

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if !seenObjective {
			obj, err := parseObjective(fields)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			p.Objective = obj
			seenObjective = true
			continue
		}

		row, sign, err := parseConstraint(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		p.Constraints = append(p.Constraints, row)
		p.Signs = append(p.Signs, sign)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seenObjective {
		return nil, errors.Wrap(model.ErrInvalidInput, "no objective line")
	}

	return p, p.Validate()
}

func parseObjective(fields []string) ([]rational.Rational, error) {
	var negate bool
	switch fields[0] {
	case "max":
	case "min":
		negate = true
	default:
		return nil, errors.Wrapf(model.ErrInvalidInput, "objective must start with max or min, got %q", fields[0])
	}

	obj, err := parseRationals(fields[1:])
	if err != nil {
		return nil, err
	}
	if negate {
		for j := range obj {
			obj[j] = obj[j].Neg()
		}
	}
	return obj, nil
}

// parseConstraint reads "a1 ... an <sign> b" into the row [a1 ... an b].
func parseConstraint(fields []string) ([]rational.Rational, model.Sign, error) {
	if len(fields) < 2 {
		return nil, 0, errors.Wrap(model.ErrInvalidInput, "constraint needs a sign and a right-hand side")
	}
	sign, err := model.ParseSign(fields[len(fields)-2])
	if err != nil {
		return nil, 0, err
	}

	n := len(fields) - 2
	row, err := parseRationals(append(append([]string{}, fields[:n]...), fields[n+1]))
	if err != nil {
		return nil, 0, err
	}
	return row, sign, nil
}

func parseRationals(fields []string) ([]rational.Rational, error) {
	rs := make([]rational.Rational, len(fields))
	for i, f := range fields {
		r, err := rational.Parse(f)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
