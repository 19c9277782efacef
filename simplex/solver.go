// Package simplex solves linear programs over nonnegative variables with an
// exact tableau simplex and, when integrality is required, Gomory
// fractional cuts.
//
// The objective is maximized. A solve runs the phases
//
//	build -> restore feasibility -> optimize -> generate cut
//
// and loops back to feasibility restoration after every cut, until the
// basic values are integral or the problem is shown infeasible or
// unbounded.
package simplex

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/rational"
)

type Solver struct {
	problem *model.Problem
	tab     *model.Tableau

	//n number of structural variables
	n int

	status Status
	pivots int
	cuts   int
	// fresh is set while the tableau is exactly as build left it
	fresh bool

	logger    Logger
	observer  func(Snapshot)
	maxPivots int
	maxCuts   int
	cutRule   CutRule
	integral  bool
}

// Result is the outcome of Solve. Values and Objective are only set when
// Status is Optimal.
type Result struct {
	Status    Status
	Values    []rational.Rational
	Objective rational.Rational

	Pivots int
	Cuts   int

	//Tableau final tableau
	Tableau *model.Tableau
}

func (r *Result) IsOptimal() bool {
	return r.Status == Optimal
}

// NewSolver validates the problem and builds the initial tableau. The
// problem must not be modified while the solver is in use.
func NewSolver(p *model.Problem, opts ...Option) (*Solver, error) {
	if p == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Solver{
		problem:   p,
		n:         p.NumVars(),
		logger:    noopLogger{},
		maxPivots: defaultMaxPivots,
		maxCuts:   defaultMaxCuts,
		cutRule:   FloorFraction,
		integral:  true,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.Wrap(err, "applying solver option")
		}
	}

	s.build()
	return s, nil
}

// Solve is a shorthand for NewSolver followed by Solver.Solve.
func Solve(p *model.Problem, opts ...Option) (*Result, error) {
	s, err := NewSolver(p, opts...)
	if err != nil {
		return nil, err
	}
	return s.Solve()
}

// build creates the m x (n+m+1) tableau. Every row is first scaled by the
// lcm of its denominators, so that its slack is integral at every integral
// point and cuts derived from it stay valid. Every row then gets its own
// slack, -1 for ">=" rows and +1 otherwise; ">=" rows are negated so that
// their slack is basic with a possibly negative rhs.
func (s *Solver) build() {
	p := s.problem
	n, m := s.n, p.NumConstraints()

	s.tab = model.NewTableau(m, n+m+1)
	s.status = InProgress
	s.pivots, s.cuts = 0, 0

	for r, row := range p.Constraints {
		k := rational.DenomLCM(row...)
		if !k.Equal(rational.One) {
			s.logger.Print(fmt.Sprintf("constraint %d: scaled by %s", r, k))
		}
		for c := range n {
			s.tab.Set(r, c, row[c].Mul(k))
		}

		slack := rational.One
		switch p.Signs[r] {
		case model.GreaterOrEqual:
			slack = slack.Neg()
		case model.LessOrEqual:
		default:
			s.logger.Print(fmt.Sprintf("constraint %d: sign %q handled as \"<=\"", r, p.Signs[r]))
		}
		s.tab.Set(r, n+r, slack)
		s.tab.Set(r, s.tab.RHSCol(), row[n].Mul(k))

		if p.Signs[r] == model.GreaterOrEqual {
			// cannot fail, r is in range
			_ = s.tab.MultiplyRow(r, rational.FromInt(-1))
		}
		s.tab.SetBasicVar(r, n+r)
	}

	s.fresh = true
	s.notify(EventBuild, -1, -1)
}

type state int

const (
	stateBuildTableau state = iota
	stateRestoreFeasibility
	stateOptimize
	stateGenerateCut
	stateExtractSolution
	stateInfeasible
	stateUnbounded
	stateDidNotConverge
	stateDone
)

// Solve runs the whole method from a freshly built tableau, so it may be
// called again after the phase methods have been used directly.
func (s *Solver) Solve() (*Result, error) {
	st := stateBuildTableau
	for st != stateDone {
		switch st {
		case stateBuildTableau:
			if s.fresh {
				s.status = InProgress
			} else {
				s.build()
			}
			st = stateRestoreFeasibility

		case stateRestoreFeasibility:
			status, err := s.RestoreFeasibility()
			if err != nil {
				return nil, err
			}
			st = next(status, stateOptimize)

		case stateOptimize:
			status, err := s.Optimize()
			if err != nil {
				return nil, err
			}
			st = next(status, stateGenerateCut)
			if st == stateGenerateCut && !s.integral {
				st = stateExtractSolution
			}

		case stateGenerateCut:
			added, err := s.GenerateCut()
			switch {
			case err != nil:
				return nil, err
			case added:
				st = stateRestoreFeasibility
			case s.status == DidNotConverge:
				st = stateDidNotConverge
			default:
				st = stateExtractSolution
			}

		case stateExtractSolution:
			s.status = Optimal
			st = stateDone

		case stateInfeasible, stateUnbounded, stateDidNotConverge:
			st = stateDone
		}
	}

	s.logger.Print(fmt.Sprintf("solve finished: %s after %d pivots and %d cuts", s.status, s.pivots, s.cuts))
	return s.result(), nil
}

// next maps the status returned by a phase to the following state.
func next(status Status, ok state) state {
	switch status {
	case Infeasible:
		return stateInfeasible
	case Unbounded:
		return stateUnbounded
	case DidNotConverge:
		return stateDidNotConverge
	default:
		return ok
	}
}

func (s *Solver) result() *Result {
	res := &Result{
		Status:  s.status,
		Pivots:  s.pivots,
		Cuts:    s.cuts,
		Tableau: s.tab.Clone(),
	}
	if s.status == Optimal {
		res.Values = s.Solution()
		res.Objective = s.problem.Evaluate(res.Values)
	}
	return res
}

// Solution reads the structural variables off the current basis: the rhs
// of the row a variable is basic in, zero otherwise.
func (s *Solver) Solution() []rational.Rational {
	x := make([]rational.Rational, s.n)
	for j := range s.n {
		if r := s.tab.BasicRow(j); r >= 0 {
			x[j] = s.tab.RHS(r)
		}
	}
	return x
}

func (s *Solver) Status() Status {
	return s.status
}

// Tableau returns a copy of the current tableau.
func (s *Solver) Tableau() *model.Tableau {
	return s.tab.Clone()
}

// cost is the objective coefficient of column k; slack and cut columns
// cost nothing.
func (s *Solver) cost(k int) rational.Rational {
	if k < s.n {
		return s.problem.Objective[k]
	}
	return rational.Zero
}

func (s *Solver) pivot(r, c int, kind EventKind) error {
	if err := Pivot(s.tab, r, c); err != nil {
		return err
	}
	s.fresh = false
	s.pivots++
	s.notify(kind, r, c)
	return nil
}
