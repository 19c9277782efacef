package simplex

import (
	"fmt"

	"github.com/ssstroke/Gomory/rational"
)

func (s *Solver) frac(v rational.Rational) rational.Rational {
	if s.cutRule == TruncatedFraction {
		return v.FracTrunc()
	}
	return v.FracFloor()
}

// fractionalRow returns the first row with the largest fractional rhs, or
// -1 when every rhs is integral.
func (s *Solver) fractionalRow() int {
	best := -1
	var bestFrac rational.Rational
	for r := range s.tab.NumRows() {
		f := s.frac(s.tab.RHS(r))
		if f.Sign() <= 0 {
			continue
		}
		if best < 0 || bestFrac.Less(f) {
			best, bestFrac = r, f
		}
	}
	return best
}

// GenerateCut appends a Gomory cut derived from the most fractional rhs
// and reports whether one was added. Once the cut limit is reached no cut
// is added and the status becomes DidNotConverge.
func (s *Solver) GenerateCut() (bool, error) {
	row := s.fractionalRow()
	if row < 0 {
		return false, nil
	}
	if s.cuts >= s.maxCuts {
		s.logger.Print(fmt.Sprintf("cut limit %d reached", s.maxCuts))
		s.status = DidNotConverge
		return false, nil
	}
	return true, s.addCut(row)
}

// addCut appends -frac(T[row][j]) for every column. The cut's slack gets
// a new column just left of the rhs; its index is one past every column
// allocated so far and becomes the basic variable of the new row.
func (s *Solver) addCut(row int) error {
	src := s.tab.Row(row)
	cut := make([]rational.Rational, len(src)+1)
	for j, v := range src[:len(src)-1] {
		cut[j] = s.frac(v).Neg()
	}
	// read before AddCol, which rewrites the source row
	rhs := s.frac(src[len(src)-1]).Neg()

	slack, err := s.tab.AddCol(make([]rational.Rational, s.tab.NumRows()))
	if err != nil {
		return err
	}
	cut[slack] = rational.One
	cut[len(cut)-1] = rhs

	if err := s.tab.AddRow(cut, slack); err != nil {
		return err
	}
	s.fresh = false
	s.cuts++
	s.logger.Print(fmt.Sprintf("cut %d from row %d (rhs %s), slack x%d", s.cuts, row, s.tab.RHS(row), slack))
	s.notify(EventCut, row, slack)
	return nil
}
