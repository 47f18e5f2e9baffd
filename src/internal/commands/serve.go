package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lojadigital/produtos/src/internal/api"
	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/domain"
	"github.com/lojadigital/produtos/src/internal/log"
)

const (
	prepareTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// ServeCommand runs the HTTP server with the REST API and the web UI.
type ServeCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps *domain.AppDependencies

	port        int
	maxRestarts int

	// signals is the parent context for Run; nil installs SIGINT/SIGTERM handling.
	signals context.Context
}

// CreateServeCommand creates a new serve command.
func CreateServeCommand() *ServeCommand {
	c := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	c.fs.IntVar(&c.port, "port", 0, "Port to listen on (overrides config and PORT)")
	c.fs.IntVar(&c.maxRestarts, "max-restarts", 5, "Give up after this many listener failures in a row (0 = unlimited)")

	return c
}

// Name returns the command name.
func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

// Init parses flags, loads configuration and builds dependencies.
func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if c.port != 0 {
		cfg.Server.Port = c.port
		if err := cfg.ValidateConfig(); err != nil {
			return fmt.Errorf("invalid -port: %w", err)
		}
	}
	c.cfg = cfg

	c.deps = domain.NewAppDependenciesFromConfig(cfg)

	return nil
}

// Run prepares the UI, then binds and serves until SIGINT or SIGTERM.
func (c *ServeCommand) Run() error {
	parent := c.signals
	if parent == nil {
		var stop context.CancelFunc
		parent, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	if path := c.cfg.FilePath(); path != "" {
		log.Infof("Configuration loaded from: %s", path)
	}
	log.Infof("Data file: %s", c.cfg.Storage.DBFile)
	log.Infof("Input mode: %s, id strategy: %s", c.cfg.API.InputMode, c.cfg.Storage.IDStrategy)

	prepareCtx, cancel := context.WithTimeout(parent, prepareTimeout)
	err := c.deps.Frontend().Prepare(prepareCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to prepare web UI: %w", err)
	}

	router := c.deps.Router()
	addr := c.cfg.Server.Addr()

	runner := NewRestartableRunner(RunnerConfig{
		Name:        "http-server",
		MaxRestarts: c.maxRestarts,
	}, func(ctx context.Context) error {
		return serveUntilDone(ctx, api.NewServer(addr, router))
	})

	if err := runner.Start(parent); err != nil {
		return err
	}

	select {
	case <-parent.Done():
		log.Infof("Shutting down...")
		if err := runner.Stop(); err != nil {
			return err
		}
		log.Infof("Server stopped gracefully")
		return nil
	case <-runner.Done():
		if err := runner.LastError(); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}
}

// serveUntilDone binds srv and serves until ctx is cancelled or serving fails.
func serveUntilDone(ctx context.Context, srv *api.Server) error {
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err == nil {
			err = http.ErrServerClosed
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
		}
		<-errCh
		return nil
	}
}
