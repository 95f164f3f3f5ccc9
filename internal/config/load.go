package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/fengate/internal/errors"
)

// Environment keys read by Load.
const (
	EnvLogLevel      = "FENGATE_LOG_LEVEL"
	EnvStartPosition = "FENGATE_START_POSITION"
	EnvSpriteDir     = "FENGATE_SPRITE_DIR"
	EnvWorkers       = "FENGATE_WORKERS"

	// EnvFile names a dotenv file that replaces every other source.
	EnvFile = "FENGATE_ENV_FILE"
)

// UserEnvFile is the dotenv file looked up under the XDG config directories.
const UserEnvFile = "fengate/fengate.env"

// Load builds a Config from defaults, dotenv files and the process
// environment. Precedence, highest first: the environment, ./.env, then
// $XDG_CONFIG_HOME/fengate/fengate.env. When FENGATE_ENV_FILE is set, only
// that file is read; see LoadFile.
func Load() (*Config, error) {
	if path := os.Getenv(EnvFile); path != "" {
		return LoadFile(path)
	}
	loadEnvFiles()
	cfg := NewConfig()
	if err := cfg.Apply(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile builds a Config from defaults and a single dotenv file,
// ignoring the process environment.
func LoadFile(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	cfg := NewConfig()
	lookup := func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
	if err := cfg.Apply(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles copies dotenv values into the process environment.
// godotenv never overrides a variable that is already set, so the file
// loaded first wins.
func loadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		logrus.Trace("no .env file in working directory")
	}
	path, err := xdg.SearchConfigFile(UserEnvFile)
	if err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logrus.WithField("path", path).Warnf("failed to load config file: %v", err)
	}
}

// Apply overrides c with any values lookup reports.
func (c *Config) Apply(lookup func(key string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", EnvLogLevel, err, errors.ErrInvalidConfig)
		}
		c.LogLevel = level
	}
	if v, ok := lookup(EnvStartPosition); ok && v != "" {
		c.StartPosition = v
	}
	if v, ok := lookup(EnvSpriteDir); ok {
		c.SpriteDir = v
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Workers = n
	}
	return nil
}
