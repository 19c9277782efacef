// Package instance loads problem instances from files.
package instance

import (
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/rational"
)

// Reader reads a mps file to construct a problem
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// toProblem converts float data to exact rationals via their shortest
// decimal form.
func toProblem(cVec []float64, rows [][]float64, signs []model.Sign) (*model.Problem, error) {
	p := &model.Problem{Signs: signs}

	var err error
	if p.Objective, err = toRationals(cVec); err != nil {
		return nil, errors.Wrap(err, "objective")
	}
	for i, row := range rows {
		rs, err := toRationals(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		p.Constraints = append(p.Constraints, rs)
	}

	return p, p.Validate()
}

func toRationals(fs []float64) ([]rational.Rational, error) {
	rs := make([]rational.Rational, len(fs))
	for i, f := range fs {
		r, err := rational.FromFloat(f)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
