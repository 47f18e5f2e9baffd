package config

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultConfigPath = "produtos.toml"
	DefaultPort       = 3000
	DefaultDBFile     = "./db.json"
	DefaultTitle      = "Produtos"

	IDStrategyLast = "last"
	IDStrategyMax  = "max"

	InputModeLenient = "lenient"
	InputModeStrict  = "strict"
)

type Config struct {
	// Server holds HTTP listener settings.
	Server ServerConfig `toml:"server" json:"server"`
	// Storage holds data file settings.
	Storage StorageConfig `toml:"storage" json:"storage"`
	// API holds request handling settings.
	API APIConfig `toml:"api" json:"api"`
	// Frontend holds web UI settings.
	Frontend FrontendConfig `toml:"frontend" json:"frontend"`

	_absConfigFilePath string
}

type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on (default: 3000, env PORT).
	Port int `toml:"port" json:"port" validate:"required,min=1,max=65535"`
	// CORS adds permissive cross-origin headers to every response (default: true).
	CORS bool `toml:"cors" json:"cors"`
}

type StorageConfig struct {
	// DBFile is the JSON file holding the product collection (default: ./db.json, env DB_FILE).
	DBFile string `toml:"db_file" json:"db_file" validate:"required"`
	// IDStrategy is "last" (last product id + 1) or "max" (largest id + 1).
	IDStrategy string `toml:"id_strategy" json:"id_strategy" validate:"required,id_strategy"`
}

type APIConfig struct {
	// InputMode is "lenient" (coerce anything) or "strict" (validate request bodies).
	InputMode string `toml:"input_mode" json:"input_mode" validate:"required,input_mode"`
}

type FrontendConfig struct {
	// UIPath is a directory with the web UI. Empty serves the UI embedded in the binary (env UI_PATH).
	UIPath string `toml:"ui_path" json:"ui_path"`
	// Title is shown in the page header and browser tab.
	Title string `toml:"title" json:"title" validate:"required,max=100"`
	// Dev re-renders the index page on every request. On by default; a set
	// APP_ENV replaces it with APP_ENV != "production".
	Dev bool `toml:"dev" json:"dev"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
			CORS: true,
		},
		Storage: StorageConfig{
			DBFile:     DefaultDBFile,
			IDStrategy: IDStrategyLast,
		},
		API: APIConfig{
			InputMode: InputModeLenient,
		},
		Frontend: FrontendConfig{
			Title: DefaultTitle,
			Dev:   true,
		},
	}
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// GetConfigDir returns the directory relative paths are resolved against.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// FilePath returns the absolute path of the loaded TOML file, or "" when defaults were used.
func (c *Config) FilePath() string {
	return c._absConfigFilePath
}
