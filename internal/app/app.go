package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/specialistvlad/gridquad/internal/observe"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/specialistvlad/gridquad/internal/registry"
	"github.com/specialistvlad/gridquad/internal/runstore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	ctx      context.Context
	config   *Config
	model    *config.Model
	registry *registry.Registry
	recorder *observe.Recorder
	store    runstore.Store

	httpServer *http.Server

	mu     sync.Mutex
	result *quadrature.Result
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// The run file is loaded here; outW receives the human-readable result and
// logW the structured log.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "path", appConfig.ConfigPath)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All integrand modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error in a compiled-in module, so we panic.
		panic(err)
	}

	a := &App{
		outW:     outW,
		logger:   logger,
		ctx:      ctx,
		config:   appConfig,
		model:    model,
		registry: reg,
		recorder: observe.NewRecorder(),
	}
	if appConfig.Cache == "memory" {
		a.store = runstore.NewMemoryStore()
	}
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Recorder returns the iterations observed so far.
func (a *App) Recorder() *observe.Recorder {
	return a.recorder
}

func (a *App) setResult(res quadrature.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result = &res
}

func (a *App) lastResult() (quadrature.Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.result == nil {
		return quadrature.Result{}, false
	}
	return *a.result, true
}
