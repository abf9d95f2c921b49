package report

import (
	"math"
	"strconv"

	"github.com/specialistvlad/gridquad/internal/quadrature"
)

const (
	EventIteration = "iteration"
	EventResult    = "result"
)

// jsonFloat keeps finite numbers as numbers and spells out NaN and the
// infinities, which JSON cannot carry.
func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// IterationPayload is the body of an "iteration" event.
func IterationPayload(it quadrature.Iteration) map[string]any {
	return map[string]any{
		"iteration":   it.Index,
		"xsteps":      it.Resolution.XSteps,
		"ysteps":      it.Resolution.YSteps,
		"threads":     it.Threads,
		"integral":    jsonFloat(it.Integral),
		"abs_error":   jsonFloat(it.AbsErr),
		"rel_error":   jsonFloat(it.RelErr),
		"duration_ms": it.Elapsed.Milliseconds(),
	}
}

// ResultPayload is the body of a "result" event.
func ResultPayload(res quadrature.Result) map[string]any {
	return map[string]any{
		"integral":        jsonFloat(res.Integral),
		"abs_error":       jsonFloat(res.AbsErr),
		"rel_error":       jsonFloat(res.RelErr),
		"elapsed_time_ms": res.Elapsed.Milliseconds(),
		"state":           res.State.String(),
		"iterations":      res.Iterations,
		"xsteps":          res.Resolution.XSteps,
		"ysteps":          res.Resolution.YSteps,
	}
}
