// Package ramp provides the affine integrand f(x, y) = a + b·x + c·y.
package ramp

import (
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// New is the constructor registered for "ramp".
func New(params map[string]float64) (quadrature.Integrand, error) {
	a, b, c := params["a"], params["b"], params["c"]
	return func(x, y float64) float64 { return a + b*x + c*y }, nil
}

// Exact returns the analytic integral of the ramp over [x0,x1] x [y0,y1].
func Exact(a, b, c, x0, y0, x1, y1 float64) float64 {
	w, h := x1-x0, y1-y0
	return a*w*h + b*(x1*x1-x0*x0)/2*h + c*(y1*y1-y0*y0)/2*w
}

// Register registers the integrand with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterIntegrand("ramp", &registry.RegisteredIntegrand{
		Description: "affine ramp a + b*x + c*y",
		Params:      map[string]float64{"a": 0, "b": 1, "c": 1},
		New:         New,
	})
}
