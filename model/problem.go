package model

import (
	"github.com/pkg/errors"

	"github.com/ssstroke/Gomory/rational"
)

var ErrInvalidInput = errors.New("invalid input")

// Sign is the relation between a constraint's left-hand side and its rhs.
type Sign int

const (
	Less Sign = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	Greater
)

func (s Sign) String() string {
	switch s {
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "="
	case GreaterOrEqual:
		return ">="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

func (s Sign) valid() bool {
	return s >= Less && s <= Greater
}

func ParseSign(s string) (Sign, error) {
	switch s {
	case "<":
		return Less, nil
	case "<=":
		return LessOrEqual, nil
	case "=", "==":
		return Equal, nil
	case ">=":
		return GreaterOrEqual, nil
	case ">":
		return Greater, nil
	}
	return 0, errors.Wrapf(ErrInvalidInput, "unknown sign %q", s)
}

// Problem is a maximization problem over nonnegative variables:
//
//	max  Objective·x
//	s.t. Constraints[i][:n]·x  Signs[i]  Constraints[i][n]
//	     x >= 0
type Problem struct {
	//Objective coefficients, one per structural variable
	Objective []rational.Rational

	//Constraints each row holds n coefficients followed by the rhs
	Constraints [][]rational.Rational

	Signs []Sign
}

// FromInts builds a problem with integral data.
func FromInts(objective []int64, rows [][]int64, signs []Sign) *Problem {
	p := &Problem{
		Objective: rational.Ints(objective...),
		Signs:     append([]Sign(nil), signs...),
	}
	for _, row := range rows {
		p.Constraints = append(p.Constraints, rational.Ints(row...))
	}
	return p
}

func (p *Problem) NumVars() int {
	return len(p.Objective)
}

func (p *Problem) NumConstraints() int {
	return len(p.Constraints)
}

// Validate checks the shapes of the problem data.
func (p *Problem) Validate() error {
	n := p.NumVars()
	if n == 0 {
		return errors.Wrap(ErrInvalidInput, "no objective coefficients")
	}
	if len(p.Signs) != p.NumConstraints() {
		return errors.Wrapf(ErrInvalidInput, "mismatch number of signs: got %d, want %d", len(p.Signs), p.NumConstraints())
	}
	for i, row := range p.Constraints {
		if len(row) != n+1 {
			return errors.Wrapf(ErrInvalidInput, "constraint %d has %d entries, want %d coefficients and a rhs", i, len(row), n)
		}
		if !p.Signs[i].valid() {
			return errors.Wrapf(ErrInvalidInput, "constraint %d has unknown sign %d", i, int(p.Signs[i]))
		}
	}
	return nil
}

// Evaluate returns the objective value at x.
func (p *Problem) Evaluate(x []rational.Rational) rational.Rational {
	z := rational.Zero
	for j, c := range p.Objective {
		z = z.Add(c.Mul(x[j]))
	}
	return z
}

// Satisfies reports whether x is nonnegative and meets every constraint
// exactly as its sign states.
func (p *Problem) Satisfies(x []rational.Rational) bool {
	n := p.NumVars()
	if len(x) != n {
		return false
	}
	for _, v := range x {
		if v.Sign() < 0 {
			return false
		}
	}
	for i, row := range p.Constraints {
		lhs := rational.Zero
		for j := range n {
			lhs = lhs.Add(row[j].Mul(x[j]))
		}
		cmp := lhs.Cmp(row[n])
		var ok bool
		switch p.Signs[i] {
		case Less:
			ok = cmp < 0
		case LessOrEqual:
			ok = cmp <= 0
		case Equal:
			ok = cmp == 0
		case GreaterOrEqual:
			ok = cmp >= 0
		case Greater:
			ok = cmp > 0
		}
		if !ok {
			return false
		}
	}
	return true
}
