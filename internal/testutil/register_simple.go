package testutil

import (
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single parameterless integrand.
type SimpleModule struct {
	Name string
	Fn   quadrature.Integrand
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	fn := m.Fn
	r.RegisterIntegrand(m.Name, &registry.RegisteredIntegrand{
		Description: "test integrand",
		New: func(map[string]float64) (quadrature.Integrand, error) {
			return fn, nil
		},
	})
}
