package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/specialistvlad/gridquad/internal/observe"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/report"
	"github.com/specialistvlad/gridquad/internal/runstore"
)

// Run integrates the loaded run file and reports the outcome. A run that
// exhausts its iteration budget is not an error; inspect Result.State.
func (a *App) Run(ctx context.Context) (quadrature.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	a.healthCheckServer()
	defer a.closeHealthCheckServer()

	m := a.effectiveModel()
	ctx = ctxlog.With(ctx, "integrand", m.Integrand, "source", m.Source)
	if err := m.Validate(); err != nil {
		return quadrature.Result{}, err
	}

	f, err := a.registry.Build(m.Integrand, m.Params)
	if err != nil {
		return quadrature.Result{}, fmt.Errorf("failed to resolve integrand: %w", err)
	}

	store := a.openStore(ctx)
	key := runstore.Fingerprint(m)
	if store != nil {
		res, ok, err := store.Get(ctx, key)
		switch {
		case err != nil:
			a.logger.Warn("Result cache lookup failed, computing.", "error", err)
		case ok:
			ctxlog.FromContext(ctx).Info("Using cached result.", "key", key)
			a.finish(ctx, m, res, true)
			return res, nil
		}
	}

	observers := observe.Multi{observe.Logger{}, a.recorder}
	var reporter *report.SocketIO
	if a.config.ReportURL != "" {
		opts := report.DefaultOptions()
		opts.URL = a.config.ReportURL
		opts.Namespace = a.config.ReportNamespace
		opts.InsecureSkipVerify = a.config.ReportInsecure
		if a.config.ReportRate > 0 {
			opts.EventsPerSecond = a.config.ReportRate
		}
		reporter, err = report.Dial(ctx, opts)
		if err != nil {
			return quadrature.Result{}, fmt.Errorf("failed to connect reporter: %w", err)
		}
		defer reporter.Close()
		observers = append(observers, reporter)
	}

	ctxlog.FromContext(ctx).Info("🚀 Starting integration...",
		"xsteps", m.XSteps,
		"ysteps", m.YSteps,
		"threads", m.ThreadNum,
		"max_iters", m.MaxIters,
	)
	res, err := quadrature.Converge(ctx, m, f, quadrature.WithObserver(observers))
	if err != nil {
		return quadrature.Result{}, fmt.Errorf("integration failed: %w", err)
	}

	if store != nil {
		if err := store.Put(ctx, key, res); err != nil {
			a.logger.Warn("Failed to store result in cache.", "error", err)
		}
	}
	if reporter != nil {
		if err := reporter.PublishResult(ctx, res); err != nil {
			a.logger.Warn("Failed to report result.", "error", err)
		}
	}

	a.finish(ctx, m, res, false)
	a.logger.Debug("App.Run method finished.")
	return res, nil
}

// effectiveModel applies CLI overrides and defaults to the loaded model.
func (a *App) effectiveModel() config.Model {
	m := *a.model
	if a.config.Threads > 0 {
		m.ThreadNum = a.config.Threads
	}
	if a.config.MaxIters > 0 {
		m.MaxIters = a.config.MaxIters
	}
	if a.config.Integrand != "" {
		m.Integrand = a.config.Integrand
	}
	return m.WithDefaults()
}

// openStore returns the configured cache, or nil when caching is disabled or
// unavailable.
func (a *App) openStore(ctx context.Context) runstore.Store {
	if a.store != nil || a.config.Cache == "" {
		return a.store
	}
	s, err := runstore.OpenRedis(ctx, a.config.Cache)
	if err != nil {
		a.logger.Warn("Result cache unavailable, continuing without it.", "error", err)
		return nil
	}
	a.store = s
	return s
}

func (a *App) finish(ctx context.Context, m config.Model, res quadrature.Result, cached bool) {
	a.setResult(res)

	logger := ctxlog.FromContext(ctx)
	logger.Info("🏁 Integration finished.",
		"state", res.State.String(),
		"integral", res.Integral,
		"abs_error", res.AbsErr,
		"rel_error", res.RelErr,
		"iterations", res.Iterations,
		"xsteps", res.Resolution.XSteps,
		"ysteps", res.Resolution.YSteps,
		"duration", res.Elapsed,
		"cached", cached,
	)
	if res.State == quadrature.Exhausted {
		logger.Warn("Tolerances not met within the iteration budget.", "max_iters", m.MaxIters)
	}

	fmt.Fprintf(a.outW, "%s: integral = %.15g (%s after %d iterations, %dx%d, abs_error=%.3g, rel_error=%.3g, %s)\n",
		m.Integrand, res.Integral, res.State, res.Iterations,
		res.Resolution.XSteps, res.Resolution.YSteps, res.AbsErr, res.RelErr, res.Elapsed)
}
