package instance

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssstroke/Gomory/model"
)

func TestToProblem(t *testing.T) {
	p, err := toProblem(
		[]float64{1, 0.5},
		[][]float64{{0.1, 2, 3.25}, {1, 0, 1}},
		[]model.Sign{model.LessOrEqual, model.GreaterOrEqual},
	)
	require.NoError(t, err)
	assert.Equal(t, "1/2", p.Objective[1].String())
	assert.Equal(t, "1/10", p.Constraints[0][0].String())
	assert.Equal(t, "13/4", p.Constraints[0][2].String())
	assert.Equal(t, model.GreaterOrEqual, p.Signs[1])
}

func TestToProblemInvalid(t *testing.T) {
	_, err := toProblem([]float64{1}, [][]float64{{1}}, []model.Sign{model.LessOrEqual})
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader("does-not-exist.mps").ReadProblem()
	assert.Error(t, err)
}
