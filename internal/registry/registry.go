package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownIntegrand is returned when a configuration names an integrand
// that no module registered.
var ErrUnknownIntegrand = errors.New("unknown integrand")

// Module is the interface that all integrand modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered integrands for a single application instance.
type Registry struct {
	IntegrandRegistry map[string]*RegisteredIntegrand
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		IntegrandRegistry: make(map[string]*RegisteredIntegrand),
	}
}

// Names returns the registered integrand names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.IntegrandRegistry))
	for name := range r.IntegrandRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns one line per registered integrand, sorted by name, with
// its description and default parameters.
func (r *Registry) Describe() []string {
	names := r.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		integrand := r.IntegrandRegistry[name]

		params := make([]string, 0, len(integrand.Params))
		for k, v := range integrand.Params {
			params = append(params, fmt.Sprintf("%s=%g", k, v))
		}
		sort.Strings(params)

		line := fmt.Sprintf("%-10s %s", name, integrand.Description)
		if len(params) > 0 {
			line += " (" + strings.Join(params, ", ") + ")"
		}
		lines = append(lines, line)
	}
	return lines
}
