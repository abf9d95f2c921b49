package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/specialistvlad/gridquad/internal/quadrature"
)

// RegisteredIntegrand holds the compiled Go parts of an integrand module.
type RegisteredIntegrand struct {
	Description string
	// Params lists every accepted parameter with its default value.
	Params map[string]float64
	// New builds the integrand from a complete parameter set: defaults
	// already merged with the user's values.
	New func(params map[string]float64) (quadrature.Integrand, error)
}

// RegisterIntegrand registers a Go constructor under the given name.
func (r *Registry) RegisterIntegrand(name string, integrand *RegisteredIntegrand) {
	if _, exists := r.IntegrandRegistry[name]; exists {
		panic(fmt.Sprintf("integrand with name '%s' already registered", name))
	}
	slog.Debug("Registering integrand.", "name", name)
	r.IntegrandRegistry[name] = integrand
}

// Build resolves name and constructs its integrand. User params override the
// module's defaults; a parameter the module does not declare is an error.
func (r *Registry) Build(name string, params map[string]float64) (quadrature.Integrand, error) {
	registered, ok := r.IntegrandRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s' (available: %s)", ErrUnknownIntegrand, name, strings.Join(r.Names(), ", "))
	}

	merged := make(map[string]float64, len(registered.Params))
	for k, v := range registered.Params {
		merged[k] = v
	}

	var unknown []string
	for k, v := range params {
		if _, ok := registered.Params[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		merged[k] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("integrand '%s' does not accept parameter(s): %s", name, strings.Join(unknown, ", "))
	}

	f, err := registered.New(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to build integrand '%s': %w", name, err)
	}
	return f, nil
}
