package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/vk/panelgrid/internal/app"
	"github.com/vk/panelgrid/internal/host"
	"github.com/zclconf/go-cty/cty"
)

// main is the entrypoint for the preview tool. It mounts one module type
// into a throwaway session, prints the resulting markup, and runs every
// registered computation once so the directives are visible too.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(outW)
	manifestPath := fs.String("manifests", "modules", "directory searched recursively for module contracts")
	moduleType := fs.String("module", "dashboard", "module type to mount")
	scope := fs.String("scope", "main", "root scope leaf for the mounted unit")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := app.NewConfig(app.Config{
		ManifestPath: *manifestPath,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
	})
	if err != nil {
		return err
	}

	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	a := app.New(os.Stderr, cfg)

	reactor := newPreviewReactor()
	ctx, sess, mounter := a.NewSession(context.Background(), reactor)
	defer sess.Close(ctx)

	unit, err := mounter.MountRoot(ctx, *scope, *moduleType)
	if err != nil {
		return err
	}

	if err := unit.Markup().WriteHTML(outW); err != nil {
		return err
	}
	fmt.Fprintln(outW)

	return reactor.printAll(ctx, outW)
}

// previewReactor runs each registered computation exactly once on demand.
// There is no dependency tracking here; a real host drives recomputation
// from its own reactive engine.
type previewReactor struct {
	mu           sync.Mutex
	computations map[string]host.ComputeFunc
}

func newPreviewReactor() *previewReactor {
	return &previewReactor{computations: make(map[string]host.ComputeFunc)}
}

// RegisterOutput implements host.Reactor.
func (r *previewReactor) RegisterOutput(ctx context.Context, id string, compute host.ComputeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.computations[id]; exists {
		return fmt.Errorf("computation for %q already registered", id)
	}
	r.computations[id] = compute
	return nil
}

// UnregisterOutput implements host.Reactor.
func (r *previewReactor) UnregisterOutput(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.computations, id)
	return nil
}

// printAll evaluates every computation in identifier order and writes one
// line per directive. Computations that fail, typically because a required
// input has no value yet, print their error instead of aborting the
// preview.
func (r *previewReactor) printAll(ctx context.Context, outW io.Writer) error {
	r.mu.Lock()
	ids := make([]string, 0, len(r.computations))
	for id := range r.computations {
		ids = append(ids, id)
	}
	computations := make(map[string]host.ComputeFunc, len(r.computations))
	for id, compute := range r.computations {
		computations[id] = compute
	}
	r.mu.Unlock()
	sort.Strings(ids)

	for _, id := range ids {
		v, err := computations[id](ctx, nil)
		if err != nil {
			if _, werr := fmt.Fprintf(outW, "%s: error: %v\n", id, err); werr != nil {
				return werr
			}
			continue
		}
		text := v.GoString()
		if v.Type() == cty.String {
			text = v.AsString()
		}
		if _, err := fmt.Fprintf(outW, "%s: %s\n", id, text); err != nil {
			return err
		}
	}
	return nil
}
