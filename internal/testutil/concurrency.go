package testutil

import (
	"sync/atomic"

	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
)

// CountingModule registers "counting", f(x, y) = 1, and records how many
// times it was evaluated and how many evaluations overlapped at most.
type CountingModule struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	peak     atomic.Int64
}

// Calls reports the total number of evaluations.
func (m *CountingModule) Calls() int64 { return m.calls.Load() }

// Peak reports the largest number of evaluations seen running at once.
func (m *CountingModule) Peak() int64 { return m.peak.Load() }

func (m *CountingModule) eval(float64, float64) float64 {
	m.calls.Add(1)
	n := m.inFlight.Add(1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}
	m.inFlight.Add(-1)
	return 1
}

// Register registers the "counting" integrand.
func (m *CountingModule) Register(r *registry.Registry) {
	r.RegisterIntegrand("counting", &registry.RegisteredIntegrand{
		Description: "constant 1 with call accounting",
		New: func(map[string]float64) (quadrature.Integrand, error) {
			return m.eval, nil
		},
	})
}
