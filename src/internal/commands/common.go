package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/lojadigital/produtos/src/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output. Nil means os.Stdout.
	Stdout io.Writer
}

func (c *AppContext) stdout() io.Writer {
	if c == nil || c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// loadConfigOrFail loads configuration from file, environment and defaults.
func loadConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
