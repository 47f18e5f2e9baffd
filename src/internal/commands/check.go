package commands

import (
	"flag"
	"fmt"

	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/log"
	"github.com/lojadigital/produtos/src/internal/store"
)

// CheckCommand loads the data file and reports invariant violations.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func CreateCheckCommand() *CheckCommand {
	return &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckCommand) Run() error {
	log.Infof("Checking %s...", g.cfg.Storage.DBFile)

	c, err := store.New(g.cfg.Storage.DBFile).Load()
	if err != nil {
		log.Errorf("Failed to load data file: %v", err)
		return err
	}

	problems := c.Problems()
	for _, p := range problems {
		log.Errorf("%s", p)
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problem(s) in %d product(s)", len(problems), len(c))
	}

	log.Infof("%d product(s), no problems found", len(c))
	return nil
}
