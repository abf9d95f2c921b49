package observe

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(i int) quadrature.Iteration {
	return quadrature.Iteration{
		Index:      i,
		Resolution: quadrature.Resolution{XSteps: 10 << i, YSteps: 20 << i},
		Threads:    4,
		Integral:   1.5,
		AbsErr:     0.25,
		RelErr:     0.125,
		Elapsed:    3 * time.Millisecond,
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	Logger{}.ObserveIteration(ctx, sample(1))

	out := buf.String()
	assert.Contains(t, out, `msg="Iteration finished."`)
	assert.Contains(t, out, "iteration=1")
	assert.Contains(t, out, "xsteps=20")
	assert.Contains(t, out, "ysteps=40")
	assert.Contains(t, out, "abs_error=0.25")
	assert.Contains(t, out, "rel_error=0.125")
	assert.Contains(t, out, "duration=3ms")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	_, ok := r.Last()
	assert.False(t, ok)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ObserveIteration(context.Background(), sample(i))
			r.Iterations()
		}()
	}
	wg.Wait()

	assert.Len(t, r.Iterations(), 50)

	r.ObserveIteration(context.Background(), sample(99))
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 99, last.Index)
}

func TestRecorder_IterationsIsACopy(t *testing.T) {
	r := NewRecorder()
	r.ObserveIteration(context.Background(), sample(1))

	got := r.Iterations()
	got[0].Index = 42

	assert.Equal(t, 1, r.Iterations()[0].Index)
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	var order []string
	first := quadrature.ObserverFunc(func(context.Context, quadrature.Iteration) { order = append(order, "first") })
	second := quadrature.ObserverFunc(func(context.Context, quadrature.Iteration) { order = append(order, "second") })

	Multi{first, a, nil, second, b}.ObserveIteration(context.Background(), sample(2))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, a.Iterations(), 1)
	assert.Len(t, b.Iterations(), 1)
}
