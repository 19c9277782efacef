package rational

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReduces(t *testing.T) {
	r, err := New(6, -4)
	require.NoError(t, err)
	assert.Equal(t, "-3/2", r.String())
	assert.Equal(t, int64(2), r.Denom().Int64())
	assert.Equal(t, int64(-3), r.Num().Int64())
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	assert.Panics(t, func() { MustNew(1, 0) })
}

func TestZeroValue(t *testing.T) {
	var z Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, "5/2", z.Add(MustNew(5, 2)).String())
}

func TestArithmetic(t *testing.T) {
	a := MustNew(1, 2)
	b := MustNew(1, 3)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())
	assert.Equal(t, "-1/2", a.Neg().String())

	// operands are left untouched
	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "1/3", b.String())
}

func TestDivByZero(t *testing.T) {
	_, err := One.Div(Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestOrdering(t *testing.T) {
	a := MustNew(-7, 3)
	b := MustNew(-2, 1)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, a.Less(b))
	assert.True(t, MustNew(4, 2).Equal(FromInt(2)))
	assert.Equal(t, -1, a.Sign())
	assert.Equal(t, 0, Zero.Sign())
}

func TestTruncAndFloor(t *testing.T) {
	tests := []struct {
		in        Rational
		trunc     string
		floor     string
		fracTrunc string
		fracFloor string
	}{
		{MustNew(7, 2), "3", "3", "1/2", "1/2"},
		{MustNew(-7, 2), "-3", "-4", "-1/2", "1/2"},
		{MustNew(-1, 3), "0", "-1", "-1/3", "2/3"},
		{FromInt(5), "5", "5", "0", "0"},
		{FromInt(-5), "-5", "-5", "0", "0"},
		{Zero, "0", "0", "0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.trunc, tt.in.Trunc().String(), "trunc(%s)", tt.in)
		assert.Equal(t, tt.floor, tt.in.Floor().String(), "floor(%s)", tt.in)
		assert.Equal(t, tt.fracTrunc, tt.in.FracTrunc().String(), "fracTrunc(%s)", tt.in)
		assert.Equal(t, tt.fracFloor, tt.in.FracFloor().String(), "fracFloor(%s)", tt.in)
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, MustNew(6, 3).IsInteger())
	assert.False(t, MustNew(3, 2).IsInteger())
	assert.True(t, Zero.IsInteger())
}

func TestParse(t *testing.T) {
	for in, want := range map[string]string{
		"3/2":  "3/2",
		"-4":   "-4",
		"0.25": "1/4",
		"10/4": "5/2",
	} {
		r, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, r.String(), in)
	}

	_, err := Parse("1/0")
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = Parse("abc")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrDivisionByZero))
}

func TestFromFloat(t *testing.T) {
	r, err := FromFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, "1/10", r.String())
	assert.InDelta(t, 0.1, r.Float64(), 1e-15)
}

func TestDenomLCM(t *testing.T) {
	assert.Equal(t, "1", DenomLCM().String())
	assert.Equal(t, "1", DenomLCM(Ints(3, -4, 0)...).String())
	assert.Equal(t, "12", DenomLCM(MustNew(1, 4), MustNew(-5, 6), FromInt(2)).String())
	assert.Equal(t, "4", DenomLCM(MustNew(1, 2), MustNew(7, 4), Zero).String())
}

func TestInts(t *testing.T) {
	rs := Ints(1, -2, 0)
	require.Len(t, rs, 3)
	assert.Equal(t, "-2", rs[1].String())
}
