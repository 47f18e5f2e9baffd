package commands

import (
	"flag"

	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/log"
)

// ConfigCommand prints the effective configuration, or writes it to a file.
type ConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	writePath string
}

func CreateConfigCommand() *ConfigCommand {
	c := &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ExitOnError),
	}

	c.fs.StringVar(&c.writePath, "write", "", "Write the effective configuration to this file instead of printing it")

	return c
}

func (c *ConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *ConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	log.SetForceStdErr(true)

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *ConfigCommand) Run() error {
	if c.writePath != "" {
		if err := c.cfg.WriteConfig(c.writePath); err != nil {
			return err
		}
		log.Infof("Configuration written to %s", c.writePath)
		return nil
	}

	buf, err := c.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = c.ctx.stdout().Write(buf.Bytes())
	return err
}
