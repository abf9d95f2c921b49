// Package observe provides quadrature.Observer implementations: a structured
// logger, a thread-safe recorder used by the status endpoint, and a fan-out.
package observe

import (
	"context"
	"sync"

	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/specialistvlad/gridquad/internal/quadrature"
)

// Logger logs every iteration at info level through the context's logger.
type Logger struct{}

func (Logger) ObserveIteration(ctx context.Context, it quadrature.Iteration) {
	ctxlog.FromContext(ctx).Info("Iteration finished.",
		"iteration", it.Index,
		"xsteps", it.Resolution.XSteps,
		"ysteps", it.Resolution.YSteps,
		"threads", it.Threads,
		"integral", it.Integral,
		"abs_error", it.AbsErr,
		"rel_error", it.RelErr,
		"duration", it.Elapsed,
	)
}

// Recorder keeps every iteration it sees. It is safe for concurrent use, so
// an HTTP handler can read it while a run is in progress.
type Recorder struct {
	mu    sync.RWMutex
	iters []quadrature.Iteration
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ObserveIteration(_ context.Context, it quadrature.Iteration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iters = append(r.iters, it)
}

// Iterations returns a copy of everything recorded so far.
func (r *Recorder) Iterations() []quadrature.Iteration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]quadrature.Iteration, len(r.iters))
	copy(out, r.iters)
	return out
}

// Last returns the most recent iteration, if any.
func (r *Recorder) Last() (quadrature.Iteration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.iters) == 0 {
		return quadrature.Iteration{}, false
	}
	return r.iters[len(r.iters)-1], true
}

// Multi notifies each observer in order. Nil entries are skipped.
type Multi []quadrature.Observer

func (m Multi) ObserveIteration(ctx context.Context, it quadrature.Iteration) {
	for _, o := range m {
		if o != nil {
			o.ObserveIteration(ctx, it)
		}
	}
}
