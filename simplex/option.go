package simplex

import "github.com/pkg/errors"

type Option func(*Solver) error

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// CutRule selects how the fractional part of a tableau entry is taken when
// building a Gomory cut.
type CutRule int

const (
	// FloorFraction uses x - floor(x), the textbook Gomory fractional cut.
	FloorFraction CutRule = iota
	// TruncatedFraction uses x - trunc(x), rounding toward zero. Negative
	// entries then yield negative fractions.
	TruncatedFraction
)

func (r CutRule) String() string {
	switch r {
	case FloorFraction:
		return "floor"
	case TruncatedFraction:
		return "trunc"
	default:
		return "unknown"
	}
}

const (
	defaultMaxPivots = 1000
	defaultMaxCuts   = 200
)

func WithLogger(logger Logger) Option {
	return func(s *Solver) error {
		if logger == nil {
			logger = noopLogger{}
		}
		s.logger = logger

		return nil
	}
}

// WithObserver registers a callback that receives a snapshot after the
// tableau is built, after every pivot and after every cut.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Solver) error {
		s.observer = fn

		return nil
	}
}

// WithMaxPivots caps the number of pivots a single feasibility or
// optimization phase may perform.
func WithMaxPivots(n int) Option {
	return func(s *Solver) error {
		if n <= 0 {
			return errors.Errorf("max pivots must be positive, got %d", n)
		}
		s.maxPivots = n

		return nil
	}
}

func WithMaxCuts(n int) Option {
	return func(s *Solver) error {
		if n < 0 {
			return errors.Errorf("max cuts must not be negative, got %d", n)
		}
		s.maxCuts = n

		return nil
	}
}

func WithCutRule(rule CutRule) Option {
	return func(s *Solver) error {
		if rule != FloorFraction && rule != TruncatedFraction {
			return errors.Errorf("unknown cut rule %d", int(rule))
		}
		s.cutRule = rule

		return nil
	}
}

// WithIntegrality(false) stops after the LP relaxation is solved.
func WithIntegrality(integral bool) Option {
	return func(s *Solver) error {
		s.integral = integral

		return nil
	}
}
