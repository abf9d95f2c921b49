// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultIntegrand is used when a configuration file does not name one.
const DefaultIntegrand = "shubert"

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Model is one run of the integrator: the domain, the starting grid, the
// stopping criteria and the worker count.
type Model struct {
	AbsError float64
	RelError float64

	X0, Y0 float64
	X1, Y1 float64

	XSteps    int
	YSteps    int
	MaxIters  int
	ThreadNum int

	// Integrand names a registered integrand module; Params are passed to it.
	Integrand string
	Params    map[string]float64

	// Source is the file the model was loaded from, if any.
	Source string
}

// Validate reports every problem with the model at once. The returned error
// wraps ErrInvalidConfig.
func (m Model) Validate() error {
	var problems []string

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"abs_error", m.AbsError},
		{"rel_error", m.RelError},
		{"x0", m.X0},
		{"y0", m.Y0},
		{"x1", m.X1},
		{"y1", m.Y1},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			problems = append(problems, fmt.Sprintf("%s must be finite, got %v", f.name, f.v))
		}
	}

	if m.AbsError <= 0 {
		problems = append(problems, fmt.Sprintf("abs_error must be positive, got %g", m.AbsError))
	}
	if m.RelError <= 0 {
		problems = append(problems, fmt.Sprintf("rel_error must be positive, got %g", m.RelError))
	}
	if !(m.X1 > m.X0) {
		problems = append(problems, fmt.Sprintf("x1 (%g) must be greater than x0 (%g)", m.X1, m.X0))
	}
	if !(m.Y1 > m.Y0) {
		problems = append(problems, fmt.Sprintf("y1 (%g) must be greater than y0 (%g)", m.Y1, m.Y0))
	}
	if m.XSteps < 1 {
		problems = append(problems, fmt.Sprintf("xsteps must be positive, got %d", m.XSteps))
	}
	if m.YSteps < 1 {
		problems = append(problems, fmt.Sprintf("ysteps must be positive, got %d", m.YSteps))
	}
	if m.MaxIters < 1 {
		problems = append(problems, fmt.Sprintf("max_iters must be positive, got %d", m.MaxIters))
	}
	if m.ThreadNum < 1 {
		problems = append(problems, fmt.Sprintf("thread_num must be at least 1, got %d", m.ThreadNum))
	} else if m.YSteps >= 1 && m.YSteps < m.ThreadNum {
		problems = append(problems, fmt.Sprintf("ysteps (%d) must be at least thread_num (%d)", m.YSteps, m.ThreadNum))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// WithDefaults fills in optional fields left empty by a loader.
func (m Model) WithDefaults() Model {
	if m.Integrand == "" {
		m.Integrand = DefaultIntegrand
	}
	return m
}
