package report

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	event   string
	payload map[string]any
}

func fakeReporter(opts Options) (*SocketIO, *[]sent, *bool) {
	var log []sent
	closed := false
	return &SocketIO{
		send:       func(event string, payload map[string]any) { log = append(log, sent{event, payload}) },
		disconnect: func() { closed = true },
		limiter:    newLimiter(opts),
	}, &log, &closed
}

func TestIterationPayload(t *testing.T) {
	p := IterationPayload(quadrature.Iteration{
		Index:      2,
		Resolution: quadrature.Resolution{XSteps: 20, YSteps: 40},
		Threads:    4,
		Integral:   0.5,
		AbsErr:     0.1,
		RelErr:     math.NaN(),
		Elapsed:    1500 * time.Millisecond,
	})

	assert.Equal(t, 2, p["iteration"])
	assert.Equal(t, 20, p["xsteps"])
	assert.Equal(t, 40, p["ysteps"])
	assert.Equal(t, 0.5, p["integral"])
	assert.Equal(t, "NaN", p["rel_error"])
	assert.Equal(t, int64(1500), p["duration_ms"])
}

func TestResultPayload(t *testing.T) {
	p := ResultPayload(quadrature.Result{
		Integral:   1,
		AbsErr:     math.Inf(1),
		State:      quadrature.Exhausted,
		Iterations: 3,
		Resolution: quadrature.Resolution{XSteps: 8, YSteps: 8},
		Elapsed:    2 * time.Second,
	})

	assert.Equal(t, "+Inf", p["abs_error"])
	assert.Equal(t, "exhausted", p["state"])
	assert.Equal(t, 3, p["iterations"])
	assert.Equal(t, int64(2000), p["elapsed_time_ms"])
}

func TestSocketIO_EmitsIterationsAndResult(t *testing.T) {
	r, log, closed := fakeReporter(Options{})
	ctx := context.Background()

	r.ObserveIteration(ctx, quadrature.Iteration{Index: 1})
	r.ObserveIteration(ctx, quadrature.Iteration{Index: 2})
	require.NoError(t, r.PublishResult(ctx, quadrature.Result{State: quadrature.Converged}))
	require.NoError(t, r.Close())

	require.Len(t, *log, 3)
	assert.Equal(t, EventIteration, (*log)[0].event)
	assert.Equal(t, 2, (*log)[1].payload["iteration"])
	assert.Equal(t, EventResult, (*log)[2].event)
	assert.Equal(t, "converged", (*log)[2].payload["state"])
	assert.True(t, *closed)
}

func TestSocketIO_RateLimitHonoursContext(t *testing.T) {
	r, log, _ := fakeReporter(Options{EventsPerSecond: 0.001, Burst: 1})

	require.NoError(t, r.PublishResult(context.Background(), quadrature.Result{}))

	// The bucket is now empty and refills in ~17 minutes.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.PublishResult(ctx, quadrature.Result{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `waiting to emit "result"`)

	r.ObserveIteration(ctx, quadrature.Iteration{Index: 7})
	assert.Len(t, *log, 1, "throttled emits must not be sent")
}

func TestDial_RejectsRelativeURL(t *testing.T) {
	_, err := Dial(context.Background(), Options{URL: "localhost:3000"})
	require.Error(t, err)
}
