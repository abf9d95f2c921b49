// Package gaussian provides an isotropic bell exp(-((x-mx)²+(y-my)²)/(2σ²)).
package gaussian

import (
	"fmt"
	"math"

	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// New is the constructor registered for "gaussian".
func New(params map[string]float64) (quadrature.Integrand, error) {
	mx, my, sigma := params["mx"], params["my"], params["sigma"]
	if !(sigma > 0) {
		return nil, fmt.Errorf("sigma must be positive, got %g", sigma)
	}
	k := 1 / (2 * sigma * sigma)
	return func(x, y float64) float64 {
		dx, dy := x-mx, y-my
		return math.Exp(-(dx*dx + dy*dy) * k)
	}, nil
}

// Register registers the integrand with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterIntegrand("gaussian", &registry.RegisteredIntegrand{
		Description: "unnormalised gaussian bell centred at (mx, my)",
		Params:      map[string]float64{"mx": 0, "my": 0, "sigma": 1},
		New:         New,
	})
}
