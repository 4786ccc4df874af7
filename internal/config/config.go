package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

const envPrefix = "WORDLOG"

// Config is the resolved configuration after file, environment and flags.
type Config struct {
	LogLevel string `validate:"oneof=debug info warn error"`
	Storage  Storage
	// Aliases maps a raw lower-cased name to its canonical name.
	Aliases map[string]string
}

// Storage selects where results are persisted.
type Storage struct {
	Backend string `validate:"oneof=csv sqlite"`
	Path    string `validate:"required"`
}

// EnvConfig holds overrides read from WORDLOG_* variables.
type EnvConfig struct {
	Table    string `envconfig:"TABLE"`
	Backend  string `envconfig:"BACKEND"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// Load resolves configuration from the TOML file at path and the environment.
// Environment values win over the file.
func Load(path string) (Config, error) {
	fileCfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	var env EnvConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}
	return Resolve(fileCfg, env)
}

// Resolve merges file and environment settings over the defaults and validates the result.
func Resolve(fileCfg FileConfig, env EnvConfig) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Storage:  Storage{Backend: BackendCSV},
		Aliases:  normalizeAliases(fileCfg.Aliases),
	}
	applyString(&cfg.LogLevel, fileCfg.LogLevel)
	applyString(&cfg.Storage.Backend, fileCfg.Storage.Backend)
	applyString(&cfg.Storage.Path, fileCfg.Storage.Path)
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	if env.Backend != "" {
		cfg.Storage.Backend = env.Backend
	}
	if env.Table != "" {
		cfg.Storage.Path = env.Table
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultTablePath(cfg.Storage.Backend)
	}
	cfg.Storage.Path = ExpandHome(cfg.Storage.Path)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyString(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func normalizeAliases(aliases map[string]string) map[string]string {
	out := make(map[string]string, len(aliases))
	for raw, canonical := range aliases {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(canonical)
	}
	return out
}
