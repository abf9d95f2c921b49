package system

import (
	"testing"

	"github.com/specialistvlad/gridquad/internal/app"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseRun = `
abs_error  = 1e-3
rel_error  = 1e-3
x0         = 0
y0         = 0
x1         = 1
y1         = 1
xsteps     = 4
ysteps     = 8
max_iters  = 10
thread_num = 1
integrand  = "gaussian"
`

// Test for: flag overrides win over the run file
func TestCLIBehavior_OverridesReplaceFileValues(t *testing.T) {
	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"run.hcl": baseRun}, app.Config{
		Threads:   4,
		MaxIters:  1,
		Integrand: "constant",
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, quadrature.Exhausted, result.Result.State)
	assert.Equal(t, 1, result.Result.Iterations)
	assert.InDelta(t, 1.0, result.Result.Integral, 1e-12)

	iters := result.App.Recorder().Iterations()
	require.Len(t, iters, 1)
	assert.Equal(t, 4, iters[0].Threads)
	assert.Contains(t, result.Output, "constant: integral = ")
}

// Test for: zero-valued overrides keep the run file's settings
func TestCLIBehavior_ZeroOverridesKeepFileValues(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"run.hcl": baseRun}, app.Config{})

	require.NoError(t, result.Err)
	iters := result.App.Recorder().Iterations()
	require.NotEmpty(t, iters)
	assert.Equal(t, 1, iters[0].Threads)
	assert.Contains(t, result.Output, "gaussian: integral = ")
}

// Test for: JSON logging emits one object per line
func TestCLIBehavior_JSONLogFormat(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"run.hcl": baseRun}, app.Config{
		LogFormat: "json",
		LogLevel:  "info",
		MaxIters:  1,
	})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, `"msg":"Iteration finished."`)
	assert.Contains(t, result.LogOutput, `"state":"exhausted"`)
	assert.Contains(t, result.LogOutput, `"integrand":"gaussian"`)
	assert.Contains(t, result.LogOutput, `"source":"`)
	assert.NotContains(t, result.LogOutput, `"level":"DEBUG"`)
}
