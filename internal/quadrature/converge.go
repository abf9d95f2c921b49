package quadrature

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
)

// Observer receives per-iteration diagnostics. Observers run on the
// convergence loop's goroutine between passes.
type Observer interface {
	ObserveIteration(ctx context.Context, it Iteration)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx context.Context, it Iteration)

func (f ObserverFunc) ObserveIteration(ctx context.Context, it Iteration) { f(ctx, it) }

type nopObserver struct{}

func (nopObserver) ObserveIteration(context.Context, Iteration) {}

// PassFunc runs a single pass. Pass is the default.
type PassFunc func(ctx context.Context, f Integrand, d Domain, r Resolution, threads int) (PassResult, error)

// Option configures Converge.
type Option func(*options)

type options struct {
	observer Observer
	pass     PassFunc
}

// WithObserver attaches an observer notified after every pass.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithPassFunc replaces the pass implementation.
func WithPassFunc(p PassFunc) Option {
	return func(opts *options) {
		if p != nil {
			opts.pass = p
		}
	}
}

// Converge runs passes at doubling resolution until both the absolute and the
// relative difference between successive estimates drop below the thresholds
// in cfg, or until cfg.MaxIters passes have run.
//
// The relative error is |abs/cur| with no guard for cur == 0; an estimate of
// exactly zero therefore produces NaN or +Inf and never converges on the
// relative criterion.
//
// Running out of iterations is not an error. The last estimate is returned
// with State set to Exhausted. ctx is checked before each pass.
func Converge(ctx context.Context, cfg config.Model, f Integrand, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, fmt.Errorf("%w: integrand is nil", config.ErrInvalidConfig)
	}

	o := options{observer: nopObserver{}, pass: Pass}
	for _, opt := range opts {
		opt(&o)
	}

	logger := ctxlog.FromContext(ctx)
	domain := DomainOf(cfg)
	res := ResolutionOf(cfg)

	var (
		prev, cur      float64
		absErr, relErr float64
		elapsed        time.Duration
		iterations     int
		state          = Running
	)

	for state == Running {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("stopped after %d iterations: %w", iterations, err)
		}

		pass, err := o.pass(ctx, f, domain, res, cfg.ThreadNum)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d at %dx%d: %w", iterations+1, res.XSteps, res.YSteps, err)
		}
		iterations++

		cur = pass.Integral
		elapsed += pass.Elapsed
		absErr = math.Abs(cur - prev)
		relErr = math.Abs(absErr / cur)

		o.observer.ObserveIteration(ctx, Iteration{
			Index:      iterations,
			Resolution: res,
			Threads:    cfg.ThreadNum,
			Integral:   cur,
			AbsErr:     absErr,
			RelErr:     relErr,
			Elapsed:    pass.Elapsed,
		})

		switch {
		case absErr < cfg.AbsError && relErr < cfg.RelError:
			state = Converged
		case iterations >= cfg.MaxIters:
			state = Exhausted
		default:
			res = res.Doubled()
			prev = cur
		}
	}

	logger.Debug("Convergence loop finished.", "state", state.String(), "iterations", iterations)

	return Result{
		Integral:   cur,
		Elapsed:    elapsed,
		AbsErr:     absErr,
		RelErr:     relErr,
		State:      state,
		Iterations: iterations,
		Resolution: res,
	}, nil
}
