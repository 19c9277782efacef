package simplex

import (
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
)

// Status is the termination status of a solve.
type Status int

const (
	InProgress Status = iota
	Optimal
	Infeasible
	Unbounded
	DidNotConverge
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case DidNotConverge:
		return "did not converge"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidInput is returned for malformed problem shapes and
	// out-of-range pivot positions.
	ErrInvalidInput = model.ErrInvalidInput
	ErrZeroPivot    = errors.New("simplex: zero pivot")
)
