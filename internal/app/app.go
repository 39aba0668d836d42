package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/powergridgo/internal/compile"
	"github.com/vk/powergridgo/internal/ctxlog"
	"github.com/vk/powergridgo/internal/netdef"
	"github.com/vk/powergridgo/internal/network"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	net    *network.Net
}

// NewApp is the constructor for the main application. It loads the network
// definition eagerly: a network that cannot be loaded is a fatal startup
// error.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	net, err := netdef.Load(ctx, cfg.NetworkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load network definition: %w", err)
	}
	net.Options = cfg.Options()
	logger.Debug("Network definition loaded and options applied.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		net:    net,
	}, nil
}

// Run compiles the network and reports a summary of the case pair.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	result, err := compile.Compile(ctx, a.net)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	ext, internal := result.External, result.Internal
	fmt.Fprintf(a.outW, "network %q compiled (mode %s, sequence %d)\n",
		a.net.Name, a.net.Options.Mode, ext.Sequence)
	fmt.Fprintf(a.outW, "  external: %d buses, %d branches, %d gens\n",
		ext.NumBus(), ext.NumBranch(), ext.NumGen())
	fmt.Fprintf(a.outW, "  internal: %d buses, %d branches, %d gens\n",
		internal.NumBus(), internal.NumBranch(), internal.NumGen())
	if isolated := ext.NumBus() - internal.NumBus(); isolated > 0 {
		fmt.Fprintf(a.outW, "  %d bus(es) isolated\n", isolated)
	}
	return nil
}
