// Package shubert provides the Shubert function, the default integrand. It is
// highly oscillatory with many local minima, which makes it a useful stress
// test for the refinement loop.
package shubert

import (
	"fmt"
	"math"

	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// DefaultTerms is the number of cosine terms in each factor.
const DefaultTerms = 5

// Shubert evaluates -(Σ i·cos((i+1)x+1)) · (Σ i·cos((i+1)y+1)) for i = 1..terms.
func Shubert(terms int) quadrature.Integrand {
	return func(x, y float64) float64 {
		var s1, s2 float64
		for i := 1; i <= terms; i++ {
			fi := float64(i)
			s1 += fi * math.Cos((fi+1)*x+1)
			s2 += fi * math.Cos((fi+1)*y+1)
		}
		return -s1 * s2
	}
}

// MaxTerms bounds the terms parameter.
const MaxTerms = 1_000_000

// New is the constructor registered for "shubert".
func New(params map[string]float64) (quadrature.Integrand, error) {
	terms := params["terms"]
	if !(terms >= 1 && terms <= MaxTerms) || terms != math.Trunc(terms) {
		return nil, fmt.Errorf("terms must be an integer in [1, %d], got %g", MaxTerms, terms)
	}
	return Shubert(int(terms)), nil
}

// Register registers the integrand with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterIntegrand("shubert", &registry.RegisteredIntegrand{
		Description: "Shubert function -(Σ i·cos((i+1)x+1))(Σ i·cos((i+1)y+1))",
		Params:      map[string]float64{"terms": DefaultTerms},
		New:         New,
	})
}
