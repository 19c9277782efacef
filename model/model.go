package model

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ssstroke/Gomory/rational"
)

// Tableau is the simplex grid. The right-hand side is always the last
// column and every row carries the column index of its basic variable.
type Tableau struct {
	//Rows coefficients followed by the rhs
	Rows [][]rational.Rational

	//basis column index of the basic variable of each row
	basis []int

	NumCols int
}

func NewTableau(numRows, numCols int) *Tableau {
	t := &Tableau{
		Rows:    make([][]rational.Rational, numRows),
		basis:   make([]int, numRows),
		NumCols: numCols,
	}
	for r := range numRows {
		t.Rows[r] = make([]rational.Rational, numCols)
	}
	return t
}

func (t *Tableau) NumRows() int {
	return len(t.Rows)
}

// RHSCol is the index of the right-hand side column.
func (t *Tableau) RHSCol() int {
	return t.NumCols - 1
}

func (t *Tableau) At(r, c int) rational.Rational {
	return t.Rows[r][c]
}

func (t *Tableau) Set(r, c int, v rational.Rational) {
	t.Rows[r][c] = v
}

func (t *Tableau) RHS(r int) rational.Rational {
	return t.Rows[r][t.RHSCol()]
}

func (t *Tableau) Row(r int) []rational.Rational {
	return t.Rows[r]
}

// Basis returns a copy of the basis mapping.
func (t *Tableau) Basis() []int {
	return append([]int(nil), t.basis...)
}

func (t *Tableau) BasicVar(r int) int {
	return t.basis[r]
}

func (t *Tableau) SetBasicVar(r, col int) {
	t.basis[r] = col
}

// BasicRow returns the row in which col is basic, or -1.
func (t *Tableau) BasicRow(col int) int {
	for r, b := range t.basis {
		if b == col {
			return r
		}
	}
	return -1
}

// AddRow appends a row together with its basic variable.
func (t *Tableau) AddRow(row []rational.Rational, basic int) error {
	if len(row) != t.NumCols {
		return errors.Errorf("mismatch number of columns: got %d, want %d", len(row), t.NumCols)
	}

	t.Rows = append(t.Rows, append([]rational.Rational(nil), row...))
	t.basis = append(t.basis, basic)
	return nil
}

// AddCol inserts a column right before the rhs and returns its index.
func (t *Tableau) AddCol(cVec []rational.Rational) (int, error) {
	if len(cVec) != t.NumRows() {
		return 0, errors.Errorf("mismatch number of rows: got %d, want %d", len(cVec), t.NumRows())
	}

	idx := t.RHSCol()
	for r, row := range t.Rows {
		rhs := row[idx]
		row = append(row[:idx], cVec[r], rhs)
		t.Rows[r] = row
	}
	t.NumCols++
	return idx, nil
}

func (t *Tableau) MultiplyRow(row int, mul rational.Rational) error {
	if row < 0 || row >= t.NumRows() {
		return errors.Errorf("row %d does not exist", row)
	}

	for c := range t.NumCols {
		t.Rows[row][c] = t.Rows[row][c].Mul(mul)
	}
	return nil
}

// Clone returns a deep copy. Rationals are immutable so copying the slices
// is enough.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{
		Rows:    make([][]rational.Rational, len(t.Rows)),
		basis:   t.Basis(),
		NumCols: t.NumCols,
	}
	for r, row := range t.Rows {
		c.Rows[r] = append([]rational.Rational(nil), row...)
	}
	return c
}

// Dense returns a floating point view of the grid, for display only.
func (t *Tableau) Dense() *mat.Dense {
	if t.NumRows() == 0 {
		return nil
	}
	d := mat.NewDense(t.NumRows(), t.NumCols, nil)
	for r, row := range t.Rows {
		for c, v := range row {
			d.Set(r, c, v.Float64())
		}
	}
	return d
}

func (t *Tableau) String() string {
	if t.NumRows() == 0 {
		return "T = []"
	}
	taux := mat.Formatted(t.Dense(), mat.Prefix("    "), mat.Squeeze())
	return fmt.Sprintf("T = %v\nbasis = %v", taux, t.basis)
}
