package simplex

import (
	"fmt"

	"github.com/ssstroke/Gomory/rational"
)

// ReducedCosts returns delta_j = sum_r cost(basis[r]) * T[r][j] - cost(j)
// for every column left of the rhs.
func (s *Solver) ReducedCosts() []rational.Rational {
	deltas := make([]rational.Rational, s.tab.RHSCol())
	for j := range deltas {
		d := rational.Zero
		for r := range s.tab.NumRows() {
			cb := s.cost(s.tab.BasicVar(r))
			if cb.IsZero() {
				continue
			}
			d = d.Add(cb.Mul(s.tab.At(r, j)))
		}
		deltas[j] = d.Sub(s.cost(j))
	}
	return deltas
}

// Optimize runs the primal simplex from a feasible tableau. It returns
// InProgress once no reduced cost is negative, or Unbounded when the
// entering column has no positive entry.
func (s *Solver) Optimize() (Status, error) {
	for pivots := 0; ; pivots++ {
		deltas := s.ReducedCosts()
		col := 0
		for j, d := range deltas {
			if d.Less(deltas[col]) {
				col = j
			}
		}
		if len(deltas) == 0 || deltas[col].Sign() >= 0 {
			return InProgress, nil
		}

		row, err := s.ratioTest(col)
		if err != nil {
			return s.status, err
		}
		if row < 0 {
			s.logger.Print(fmt.Sprintf("column %d enters with no leaving row", col))
			s.status = Unbounded
			return Unbounded, nil
		}

		if pivots >= s.maxPivots {
			s.logger.Print(fmt.Sprintf("optimization phase exceeded %d pivots", s.maxPivots))
			s.status = DidNotConverge
			return DidNotConverge, nil
		}
		if err := s.pivot(row, col, EventOptimizationPivot); err != nil {
			return s.status, err
		}
	}
}

// ratioTest picks, among rows with a positive entry in col, the first one
// minimizing rhs / entry. It returns -1 if there is none.
func (s *Solver) ratioTest(col int) (int, error) {
	best := -1
	var theta rational.Rational
	for r := range s.tab.NumRows() {
		a := s.tab.At(r, col)
		if a.Sign() <= 0 {
			continue
		}
		q, err := s.tab.RHS(r).Div(a)
		if err != nil {
			return -1, err
		}
		if best < 0 || q.Less(theta) {
			best, theta = r, q
		}
	}
	return best, nil
}
