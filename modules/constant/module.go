// Package constant provides f(x, y) = value. The midpoint rule integrates it
// exactly, which makes it the reference integrand for engine checks.
package constant

import (
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// New is the constructor registered for "constant".
func New(params map[string]float64) (quadrature.Integrand, error) {
	v := params["value"]
	return func(float64, float64) float64 { return v }, nil
}

// Register registers the integrand with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterIntegrand("constant", &registry.RegisteredIntegrand{
		Description: "constant value",
		Params:      map[string]float64{"value": 1},
		New:         New,
	})
}
