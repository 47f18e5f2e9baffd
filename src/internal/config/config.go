package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
	"github.com/lojadigital/produtos/src/internal/log"
	"github.com/lojadigital/produtos/src/internal/utils"
)

// LoadConfig reads configPath (when it exists), applies environment
// overrides, resolves relative paths and validates the result.
// An empty configPath or a missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		configFile, err := filepath.Abs(filepath.Clean(configPath))
		if err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		}

		content, err := os.ReadFile(configFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Debugf("Configuration file %s not found, using defaults", configFile)
		case err != nil:
			return nil, apperrors.NewConfigError("failed to read config file", err)
		default:
			if err := decode(content, config); err != nil {
				return nil, err
			}
			config._absConfigFilePath = configFile
		}
	}

	config.applyEnv()

	if err := config.resolvePaths(); err != nil {
		return nil, err
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, apperrors.NewConfigError("invalid configuration", err)
	}

	log.Debugf("Configuration file path: %s", config._absConfigFilePath)
	log.Debugf("Data file: %s", config.Storage.DBFile)

	return config, nil
}

func decode(content []byte, config *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	if err := dec.Decode(config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return apperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}

		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("%s", serr.String())
			return apperrors.NewConfigError("unknown keys in config file", err)
		}

		return apperrors.NewConfigError("failed to parse config file", err)
	}

	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Warnf("Ignoring %s=%q: not a number", key, v)
		return def
	}
	return n
}

func (c *Config) applyEnv() {
	c.Server.Port = atoienv("PORT", c.Server.Port)
	c.Storage.DBFile = getenv("DB_FILE", c.Storage.DBFile)
	c.Frontend.UIPath = getenv("UI_PATH", c.Frontend.UIPath)

	if env := getenv("APP_ENV", ""); env != "" {
		c.Frontend.Dev = env != "production"
	}
}

func (c *Config) resolvePaths() error {
	baseDir := c.GetConfigDir()
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return apperrors.NewConfigError("failed to get working directory", err)
		}
		baseDir = wd
	}

	if c.Storage.DBFile != "" {
		c.Storage.DBFile = utils.GetAbsolutePath(c.Storage.DBFile, baseDir)
	}
	if c.Frontend.UIPath != "" {
		c.Frontend.UIPath = utils.GetAbsolutePath(c.Frontend.UIPath, baseDir)
	}
	return nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig writes the configuration back to the file it was loaded from,
// or to path when given.
func (c *Config) WriteConfig(path string) error {
	if path == "" {
		path = c._absConfigFilePath
	}
	if path == "" {
		return apperrors.NewConfigError("no config file path", nil)
	}

	config, err := c.SerializeConfig()
	if err != nil {
		return apperrors.NewConfigError("failed to serialize config", err)
	}
	if err := utils.EnsureParentDir(path); err != nil {
		return apperrors.NewConfigError("failed to create config directory", err)
	}
	if err := utils.WriteFileAtomic(path, config.Bytes(), 0644); err != nil {
		return apperrors.NewConfigError("failed to write config file", err)
	}
	return nil
}
