// Package rational provides the exact fraction type used for every tableau
// entry. Values are immutable: every operation returns a new reduced value.
package rational

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrDivisionByZero = errors.New("rational: division by zero")

// Rational is an exact fraction with a positive denominator, always kept in
// lowest terms. The zero value is 0.
type Rational struct {
	v *big.Rat
}

var (
	Zero = Rational{}
	One  = FromInt(1)
)

func FromInt(n int64) Rational {
	return Rational{v: new(big.Rat).SetInt64(n)}
}

func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Zero, errors.Wrapf(ErrDivisionByZero, "%d/0", num)
	}
	return Rational{v: big.NewRat(num, den)}, nil
}

// MustNew is like New but panics on a zero denominator.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse accepts "a/b", integers and decimals ("0.25").
func Parse(s string) (Rational, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		// big.Rat reports a zero denominator as a plain parse failure
		if _, den, found := strings.Cut(s, "/"); found {
			if d, err := strconv.ParseInt(den, 10, 64); err == nil && d == 0 {
				return Zero, errors.Wrapf(ErrDivisionByZero, "parsing %q", s)
			}
		}
		return Zero, errors.Errorf("rational: cannot parse %q", s)
	}
	return Rational{v: v}, nil
}

// FromFloat converts through the shortest decimal representation of f, so
// 0.1 becomes 1/10 instead of its binary expansion.
func FromFloat(f float64) (Rational, error) {
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

func (a Rational) rat() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

func (a Rational) Add(b Rational) Rational {
	return Rational{v: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Rational) Sub(b Rational) Rational {
	return Rational{v: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Rational) Mul(b Rational) Rational {
	return Rational{v: new(big.Rat).Mul(a.rat(), b.rat())}
}

func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Zero, errors.Wrapf(ErrDivisionByZero, "%s/0", a)
	}
	return Rational{v: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

func (a Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(a.rat())}
}

// Cmp returns -1, 0 or +1 depending on whether a < b, a == b or a > b.
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

func (a Rational) Less(b Rational) bool  { return a.Cmp(b) < 0 }
func (a Rational) Equal(b Rational) bool { return a.Cmp(b) == 0 }
func (a Rational) Sign() int             { return a.rat().Sign() }
func (a Rational) IsZero() bool          { return a.Sign() == 0 }
func (a Rational) IsInteger() bool       { return a.rat().IsInt() }

// Trunc returns the integer part of a, rounded toward zero.
func (a Rational) Trunc() Rational {
	q := new(big.Int).Quo(a.rat().Num(), a.rat().Denom())
	return Rational{v: new(big.Rat).SetInt(q)}
}

// Floor returns the greatest integer not above a.
func (a Rational) Floor() Rational {
	// Euclidean division rounds down for a positive divisor
	q := new(big.Int).Div(a.rat().Num(), a.rat().Denom())
	return Rational{v: new(big.Rat).SetInt(q)}
}

// FracTrunc returns a - Trunc(a). The result has the sign of a.
func (a Rational) FracTrunc() Rational {
	return a.Sub(a.Trunc())
}

// FracFloor returns a - Floor(a), always in [0, 1).
func (a Rational) FracFloor() Rational {
	return a.Sub(a.Floor())
}

func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

func (a Rational) Denom() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

// String formats a as "p/q", or just "p" for integers.
func (a Rational) String() string {
	return a.rat().RatString()
}

// DenomLCM returns the least common multiple of the denominators of rs, the
// smallest positive integer that makes every value integral when multiplied
// in.
func DenomLCM(rs ...Rational) Rational {
	l := big.NewInt(1)
	var g big.Int
	for _, r := range rs {
		d := r.rat().Denom()
		g.GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, &g))
	}
	return Rational{v: new(big.Rat).SetInt(l)}
}

// Ints builds a slice of integral rationals.
func Ints(ns ...int64) []Rational {
	rs := make([]Rational, len(ns))
	for i, n := range ns {
		rs[i] = FromInt(n)
	}
	return rs
}
