package simplex

import "fmt"

// RestoreFeasibility removes negative right-hand sides. It returns
// InProgress once every rhs is nonnegative, or Infeasible when the row with
// the smallest rhs has no negative coefficient to pivot on.
func (s *Solver) RestoreFeasibility() (Status, error) {
	for pivots := 0; ; pivots++ {
		row := s.mostNegativeRHS()
		if row < 0 {
			return InProgress, nil
		}

		col := -1
		for c := range s.tab.RHSCol() {
			if s.tab.At(row, c).Sign() < 0 {
				col = c
				break
			}
		}
		if col < 0 {
			s.logger.Print(fmt.Sprintf("row %d has rhs %s and no negative coefficient", row, s.tab.RHS(row)))
			s.status = Infeasible
			return Infeasible, nil
		}

		if pivots >= s.maxPivots {
			s.logger.Print(fmt.Sprintf("feasibility phase exceeded %d pivots", s.maxPivots))
			s.status = DidNotConverge
			return DidNotConverge, nil
		}
		if err := s.pivot(row, col, EventFeasibilityPivot); err != nil {
			return s.status, err
		}
	}
}

// mostNegativeRHS returns the first row holding the smallest rhs, or -1
// if no rhs is negative.
func (s *Solver) mostNegativeRHS() int {
	best := -1
	for r := range s.tab.NumRows() {
		v := s.tab.RHS(r)
		if v.Sign() >= 0 {
			continue
		}
		if best < 0 || v.Less(s.tab.RHS(best)) {
			best = r
		}
	}
	return best
}
