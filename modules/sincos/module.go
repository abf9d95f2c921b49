// Package sincos provides f(x, y) = sin(kx·x)·cos(ky·y), a smooth oscillating
// integrand with a closed-form integral.
package sincos

import (
	"fmt"
	"math"

	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// New is the constructor registered for "sincos".
func New(params map[string]float64) (quadrature.Integrand, error) {
	kx, ky := params["kx"], params["ky"]
	if kx == 0 || ky == 0 {
		return nil, fmt.Errorf("kx and ky must be non-zero, got kx=%g ky=%g", kx, ky)
	}
	return func(x, y float64) float64 { return math.Sin(kx*x) * math.Cos(ky*y) }, nil
}

// Exact returns the analytic integral over [x0,x1] x [y0,y1].
func Exact(kx, ky, x0, y0, x1, y1 float64) float64 {
	ix := (math.Cos(kx*x0) - math.Cos(kx*x1)) / kx
	iy := (math.Sin(ky*y1) - math.Sin(ky*y0)) / ky
	return ix * iy
}

// Register registers the integrand with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterIntegrand("sincos", &registry.RegisteredIntegrand{
		Description: "sin(kx*x) * cos(ky*y)",
		Params:      map[string]float64{"kx": 1, "ky": 1},
		New:         New,
	})
}
