package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/gridquad/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl, .json, .yaml or .yml run file

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Overrides for the run file. Zero values leave the file's setting alone.
	Threads   int
	MaxIters  int
	Integrand string

	ReportURL       string
	ReportNamespace string
	ReportRate      float64
	ReportInsecure  bool

	// Cache is empty (disabled), "memory", or a redis:// URL.
	Cache string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Threads < 0 {
		return nil, fmt.Errorf("threads override must not be negative, got %d", cfg.Threads)
	}
	if cfg.MaxIters < 0 {
		return nil, fmt.Errorf("max-iters override must not be negative, got %d", cfg.MaxIters)
	}
	if cfg.ReportRate < 0 {
		return nil, fmt.Errorf("report rate must not be negative, got %g", cfg.ReportRate)
	}
	if cfg.ReportNamespace == "" {
		cfg.ReportNamespace = report.DefaultOptions().Namespace
	}
	switch {
	case cfg.Cache == "", cfg.Cache == "memory":
	case strings.HasPrefix(cfg.Cache, "redis://"), strings.HasPrefix(cfg.Cache, "rediss://"):
	default:
		return nil, fmt.Errorf("invalid cache %q: must be 'memory' or a redis:// URL", cfg.Cache)
	}

	return &cfg, nil
}
