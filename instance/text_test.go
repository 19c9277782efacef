package instance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssstroke/Gomory/model"
)

func rowStrings(p *model.Problem, i int) []string {
	s := make([]string, len(p.Constraints[i]))
	for j, v := range p.Constraints[i] {
		s[j] = v.String()
	}
	return s
}

func TestParseText(t *testing.T) {
	src := `
# original example
min 3 0
0 3 >= 4
2 1 >= 4   # second row
-4 3 <= 4
1/2 0.25 = 5/4
`
	p, err := ParseText(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, p.Objective, 2)
	assert.Equal(t, "-3", p.Objective[0].String())
	assert.Equal(t, 4, p.NumConstraints())
	assert.Equal(t, []model.Sign{model.GreaterOrEqual, model.GreaterOrEqual, model.LessOrEqual, model.Equal}, p.Signs)
	assert.Equal(t, []string{"2", "1", "4"}, rowStrings(p, 1))
	assert.Equal(t, []string{"1/2", "1/4", "5/4"}, rowStrings(p, 3))
}

func TestParseTextErrors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":          "# nothing\n",
		"no direction":   "3 2\n1 1 <= 4\n",
		"bad sign":       "max 1\n1 => 4\n",
		"short row":      "max 1 1\n1 <= 4\n",
		"missing rhs":    "max 1\n<=\n",
		"zero denom":     "max 1\n1 <= 1/0\n",
		"not a rational": "max 1\nx <= 4\n",
	} {
		_, err := ParseText(strings.NewReader(src))
		assert.Error(t, err, name)
	}

	_, err := ParseText(strings.NewReader("max 1\n1 => 4\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestReadTextFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "small.lp")
	require.NoError(t, os.WriteFile(name, []byte("max 1\n2 <= 3\n"), 0o644))

	p, err := ReadTextFile(name)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, rowStrings(p, 0))

	_, err = ReadTextFile(filepath.Join(t.TempDir(), "missing.lp"))
	assert.Error(t, err)
}
