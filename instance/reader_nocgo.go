//go:build !glpk

package instance

import (
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
)

// Supported reports whether this build can read MPS files.
const Supported = false

func (r *Reader) ReadProblem() (*model.Problem, error) {
	return nil, errors.Errorf("cannot read %s: built without the glpk tag", r.filename)
}
