package quadrature

import (
	"context"
	"math"
	"time"

	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// PassResult is the aggregated estimate of one pass at a fixed resolution.
type PassResult struct {
	Integral float64
	Elapsed  time.Duration // dispatch to join
}

// Pass integrates f over d at resolution r using one goroutine per strip.
// It returns only after every worker has finished. If any strip panics or
// yields a non-finite value the pass fails with a *WorkerError and no partial
// sum is reported.
//
// ctx is used for logging only: a running pass cannot be cancelled.
func Pass(ctx context.Context, f Integrand, d Domain, r Resolution, threads int) (PassResult, error) {
	logger := ctxlog.FromContext(ctx)

	regions, err := Partition(d, r, threads)
	if err != nil {
		return PassResult{}, err
	}

	start := time.Now()
	partials := make(chan float64, len(regions))

	var g errgroup.Group
	for strip, reg := range regions {
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &WorkerError{Strip: strip, Err: ErrWorkerPanic, Panic: p}
				}
			}()

			v := IntegrateStrip(f, reg)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &WorkerError{Strip: strip, Err: ErrNonFinite, Value: v}
			}
			partials <- v
			return nil
		})
	}
	logger.Debug("Strips dispatched.", "strips", len(regions), "xsteps", r.XSteps, "ysteps", r.YSteps, "cells", r.Cells())

	err = g.Wait()
	close(partials)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("Pass failed.", "error", err)
		return PassResult{}, err
	}

	var sum float64
	for v := range partials {
		sum += v
	}

	return PassResult{Integral: sum, Elapsed: elapsed}, nil
}
