package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lojadigital/produtos/src/internal/commands"
	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file (optional)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Produtos - product catalogue REST API and web UI\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [command]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP server (default)\n")
		fmt.Fprintf(os.Stderr, "  export                  Print all products (-format table|json|yaml|toml)\n")
		fmt.Fprintf(os.Stderr, "  check                   Check the data file for duplicate ids and invalid records\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "Environment:\n")
		fmt.Fprintf(os.Stderr, "  PORT, DB_FILE, UI_PATH, APP_ENV override the configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateServeCommand(),
		commands.CreateExportCommand(),
		commands.CreateCheckCommand(),
		commands.CreateConfigCommand(),
	}

	args := flag.Args()
	if len(args) < 1 {
		args = []string{"serve"}
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	flag.Usage()
	log.Fatalf("Unknown subcommand: %s", subcommand)
}
