// Package commands implements CLI command handlers for produtos.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - serve: Run the HTTP server with the REST API and web UI
//   - export: Print the product collection as a table, JSON, YAML or TOML
//   - check: Report data file records that break the collection invariants
//   - config: Print the effective configuration or write it to a file
//
// # Example Usage
//
//	cmd := commands.CreateExportCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "produtos.toml",
//	}
//	if err := cmd.Init([]string{"-format", "yaml"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
