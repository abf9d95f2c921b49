package registry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/specialistvlad/gridquad/internal/ctxlog"
)

// ValidateRegistry checks that every registered integrand can be built from
// its own defaults.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		integrand := r.IntegrandRegistry[name]
		if integrand == nil || integrand.New == nil {
			errs = append(errs, fmt.Sprintf("integrand '%s': no constructor registered", name))
			continue
		}
		for param, def := range integrand.Params {
			if math.IsNaN(def) || math.IsInf(def, 0) {
				errs = append(errs, fmt.Sprintf("integrand '%s': default for '%s' is not finite", name, param))
			}
		}
		if _, err := r.Build(name, nil); err != nil {
			errs = append(errs, fmt.Sprintf("integrand '%s': defaults rejected: %v", name, err))
		}
	}

	if len(errs) > 0 {
		logger.Error("Registry validation failed.", "errors", len(errs))
		return errors.New("registry validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "integrands", len(r.IntegrandRegistry))
	return nil
}
