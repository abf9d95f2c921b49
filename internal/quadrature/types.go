package quadrature

import (
	"fmt"
	"time"

	"github.com/specialistvlad/gridquad/internal/config"
)

// Integrand is a pure scalar function of two coordinates. It is called
// concurrently from every worker and must be safe for that.
type Integrand func(x, y float64) float64

// Domain is the rectangle [X0, X1] x [Y0, Y1].
type Domain struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Resolution is the number of grid cells along each axis of the whole domain.
type Resolution struct {
	XSteps int
	YSteps int
}

// Doubled returns the resolution with both step counts doubled.
func (r Resolution) Doubled() Resolution {
	return Resolution{XSteps: r.XSteps * 2, YSteps: r.YSteps * 2}
}

// Cells is the total number of grid cells evaluated by one pass.
func (r Resolution) Cells() int {
	return r.XSteps * r.YSteps
}

// Region is one worker's share of a pass: a strip of the domain together with
// the number of cells it is divided into.
type Region struct {
	X0, X1 float64
	Y0, Y1 float64
	XSteps int
	YSteps int
}

// State is the position of a convergence run in its state machine.
type State int

const (
	Running State = iota
	Converged
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, error) {
	switch s {
	case "running":
		return Running, nil
	case "converged":
		return Converged, nil
	case "exhausted":
		return Exhausted, nil
	}
	return Running, fmt.Errorf("unknown convergence state %q", s)
}

// Iteration describes one finished refinement pass.
type Iteration struct {
	Index      int // 1-based
	Resolution Resolution
	Threads    int
	Integral   float64
	AbsErr     float64
	RelErr     float64
	Elapsed    time.Duration
}

// Result is the outcome of a convergence run.
type Result struct {
	Integral float64
	Elapsed  time.Duration // summed over all passes
	AbsErr   float64
	RelErr   float64

	State      State
	Iterations int
	Resolution Resolution // resolution of the final estimate
}

// DomainOf extracts the integration domain from a run configuration.
func DomainOf(m config.Model) Domain {
	return Domain{X0: m.X0, Y0: m.Y0, X1: m.X1, Y1: m.Y1}
}

// ResolutionOf extracts the starting resolution from a run configuration.
func ResolutionOf(m config.Model) Resolution {
	return Resolution{XSteps: m.XSteps, YSteps: m.YSteps}
}
