// Package config loads the service settings.
//
// Settings come from three layers, later ones winning:
//   - built-in defaults (port 3000, ./db.json, embedded UI)
//   - an optional TOML file
//   - environment variables PORT, DB_FILE, UI_PATH and APP_ENV
//
// Relative paths are resolved against the directory of the TOML file, or the
// working directory when no file is used. The result is validated with
// go-playground/validator before it is returned.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/produtos/produtos.toml")
//	if err != nil {
//	    log.Fatalf("Failed to load configuration: %v", err)
//	}
//	fmt.Println(cfg.Server.Addr())
//
// # Configuration File
//
//	[server]
//	port = 3000
//	cors = true
//
//	[storage]
//	db_file = "./db.json"
//	id_strategy = "last"   # or "max"
//
//	[api]
//	input_mode = "lenient" # or "strict"
//
//	[frontend]
//	ui_path = ""           # empty serves the embedded UI
//	title = "Produtos"
//	dev = true             # APP_ENV=production turns it off
package config
