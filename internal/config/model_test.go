package config

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() Model {
	return Model{
		AbsError:  1e-6,
		RelError:  1e-6,
		X0:        0,
		Y0:        0,
		X1:        1,
		Y1:        1,
		XSteps:    10,
		YSteps:    10,
		MaxIters:  5,
		ThreadNum: 2,
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validModel().Validate())
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *Model)
		want   string
	}{
		{"zero threads", func(m *Model) { m.ThreadNum = 0 }, "thread_num must be at least 1"},
		{"negative xsteps", func(m *Model) { m.XSteps = -1 }, "xsteps must be positive"},
		{"zero ysteps", func(m *Model) { m.YSteps = 0 }, "ysteps must be positive"},
		{"fewer ysteps than threads", func(m *Model) { m.YSteps = 3; m.ThreadNum = 4 }, "ysteps (3) must be at least thread_num (4)"},
		{"inverted x", func(m *Model) { m.X1 = -1 }, "x1 (-1) must be greater than x0 (0)"},
		{"empty y", func(m *Model) { m.Y1 = 0 }, "y1 (0) must be greater than y0 (0)"},
		{"nan bound", func(m *Model) { m.X0 = math.NaN() }, "x0 must be finite"},
		{"zero max iters", func(m *Model) { m.MaxIters = 0 }, "max_iters must be positive"},
		{"zero abs error", func(m *Model) { m.AbsError = 0 }, "abs_error must be positive"},
		{"negative rel error", func(m *Model) { m.RelError = -1 }, "rel_error must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validModel()
			tc.mutate(&m)

			err := m.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	m := validModel()
	m.ThreadNum = 0
	m.MaxIters = 0

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thread_num")
	assert.Contains(t, err.Error(), "max_iters")
}

func TestWithDefaults(t *testing.T) {
	m := validModel().WithDefaults()
	assert.Equal(t, DefaultIntegrand, m.Integrand)

	m.Integrand = "constant"
	assert.Equal(t, "constant", m.WithDefaults().Integrand)
}

type stubLoader struct{ model *Model }

func (s stubLoader) Load(context.Context, string) (*Model, error) { return s.model, nil }

func TestExtensionLoader(t *testing.T) {
	hclModel := &Model{Integrand: "from-hcl"}
	yamlModel := &Model{Integrand: "from-yaml"}
	loader := ExtensionLoader{
		".hcl":  stubLoader{hclModel},
		".yaml": stubLoader{yamlModel},
	}

	got, err := loader.Load(context.Background(), "run.HCL")
	require.NoError(t, err)
	assert.Same(t, hclModel, got)

	got, err = loader.Load(context.Background(), "dir/run.yaml")
	require.NoError(t, err)
	assert.Same(t, yamlModel, got)

	_, err = loader.Load(context.Background(), "run.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), `".toml"`)
}
