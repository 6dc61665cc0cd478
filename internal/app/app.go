package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/panelgrid/internal/ctxlog"
	"github.com/vk/panelgrid/internal/host"
	"github.com/vk/panelgrid/internal/manifest"
	"github.com/vk/panelgrid/internal/mount"
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/internal/session"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry.
// Startup failures — unparseable manifests, contract/code mismatches —
// are programmer errors and panic.
func New(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := manifest.LoadDir(ctx, cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load module manifests: %w", err))
	}
	logger.Debug("Module manifests loaded into unified model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	reg.PopulateDefinitionsFromModel(model)
	logger.Debug("Registry definitions populated from manifest model.")

	if err := reg.Validate(ctx); err != nil {
		// A mismatch between code and contracts is a programmer error.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger returns the application's isolated logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewSession starts a host session: fresh registries bound to the host's
// reactor, plus a mounter for instantiating units into it. The returned
// context carries the app logger for everything done within the session.
func (a *App) NewSession(ctx context.Context, reactor host.Reactor) (context.Context, *session.Session, *mount.Mounter) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	sess := session.New(ctx, reactor)
	return ctx, sess, mount.New(a.registry, sess)
}
