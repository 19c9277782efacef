package simplex

import (
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/rational"
)

// Pivot performs the Gauss-Jordan transform on (r, c): row r is divided by
// the pivot and column c is eliminated from every other row. The grid is
// replaced by a fresh one and c becomes the basic variable of row r.
func Pivot(t *model.Tableau, r, c int) error {
	if r < 0 || r >= t.NumRows() || c < 0 || c >= t.RHSCol() {
		return errors.Wrapf(ErrInvalidInput, "pivot position (%d, %d) out of range", r, c)
	}
	p := t.At(r, c)
	if p.IsZero() {
		return errors.Wrapf(ErrZeroPivot, "at (%d, %d)", r, c)
	}

	old := t.Rows
	pivotRow := old[r]
	rows := make([][]rational.Rational, len(old))
	for i, row := range old {
		nr := make([]rational.Rational, len(row))
		if i == r {
			for j, v := range row {
				q, err := v.Div(p)
				if err != nil {
					return err
				}
				nr[j] = q
			}
			rows[i] = nr
			continue
		}

		f, err := row[c].Div(p)
		if err != nil {
			return err
		}
		if f.IsZero() {
			copy(nr, row)
			rows[i] = nr
			continue
		}
		for j, v := range row {
			nr[j] = v.Sub(pivotRow[j].Mul(f))
		}
		rows[i] = nr
	}

	t.Rows = rows
	t.SetBasicVar(r, c)
	return nil
}
