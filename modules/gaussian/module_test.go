package gaussian

import (
	"context"
	"math"
	"testing"

	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveSigma(t *testing.T) {
	_, err := New(map[string]float64{"sigma": 0})
	assert.ErrorContains(t, err, "sigma must be positive")
}

func TestGaussian_ConvergesToAnalyticVolume(t *testing.T) {
	f, err := New(map[string]float64{"mx": 0, "my": 0, "sigma": 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, f(0, 0))

	cfg := config.Model{
		AbsError: 1e-7, RelError: 1e-7,
		X0: -8, Y0: -8, X1: 8, Y1: 8,
		XSteps: 16, YSteps: 16, MaxIters: 8, ThreadNum: 4,
	}
	res, err := quadrature.Converge(context.Background(), cfg, f)
	require.NoError(t, err)

	// Tails beyond 8σ are far below the tolerance.
	assert.InDelta(t, 2*math.Pi, res.Integral, 1e-6)
}
