//go:build glpk

package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/model"
)

// Supported reports whether this build can read MPS files.
const Supported = true

// ReadProblem reads the MPS file into a maximization problem over
// nonnegative variables. Equality rows become a "<=" and a ">=" row, finite
// column bounds become extra rows.
func (r *Reader) ReadProblem() (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.filename)
	}

	numCols := lp.NumCols()
	sense := 1.0
	if lp.ObjDir() == glpk.MIN {
		sense = -1
	}

	//populate obj function
	var cVec []float64
	for c := range numCols {
		cVec = append(cVec, sense*lp.ObjCoef(c+1))
	}

	//populate constraints
	var rows [][]float64
	var signs []model.Sign
	addRow := func(rowVec []float64, rhs float64, sign model.Sign) {
		rows = append(rows, append(append([]float64(nil), rowVec...), rhs))
		signs = append(signs, sign)
	}
	for r := range lp.NumRows() {
		rowVec := make([]float64, numCols)
		idxs, row := lp.MatRow(r + 1)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = row[i]
		}

		lb, ub := lp.RowLB(r+1), lp.RowUB(r+1)
		if lb != -math.MaxFloat64 {
			addRow(rowVec, lb, model.GreaterOrEqual)
		}
		if ub != math.MaxFloat64 {
			addRow(rowVec, ub, model.LessOrEqual)
		}
	}

	for c := range numCols {
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if lb < 0 {
			return nil, errors.Wrapf(model.ErrInvalidInput, "column %s has negative lower bound", lp.ColName(c+1))
		}
		rowVec := make([]float64, numCols)
		rowVec[c] = 1
		if lb > 0 {
			addRow(rowVec, lb, model.GreaterOrEqual)
		}
		if ub != math.MaxFloat64 {
			addRow(rowVec, ub, model.LessOrEqual)
		}
	}

	return toProblem(cVec, rows, signs)
}
