// Package config loads the process configuration once at startup. The
// resulting struct is passed explicitly to collaborators; nothing reads
// the environment after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `koanf:"server"   validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth"     validate:"required"`
	Log      LogConfig      `koanf:"log"      validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"required,min=1,max=65535"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig contains Postgres connection settings.
type DatabaseConfig struct {
	Host            string        `koanf:"host"              validate:"required"`
	Port            int           `koanf:"port"              validate:"required,min=1,max=65535"`
	User            string        `koanf:"user"              validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"              validate:"required"`
	SSLMode         string        `koanf:"sslmode"           validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"required,min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"required,min=1"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required,min=1s"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required,min=1s"`
}

// AuthConfig contains token settings. The secret has no default; it must
// come from the config file or the environment.
type AuthConfig struct {
	JWTSecret string        `koanf:"secret" validate:"required,min=32"`
	TokenTTL  time.Duration `koanf:"ttl"    validate:"required,min=1m"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=text json"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

func defaults() map[string]any {
	return map[string]any{
		"server.host": "0.0.0.0",
		"server.port": 8080,

		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.password":           "",
		"database.name":               "lifted",
		"database.sslmode":            "disable",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     25,
		"database.conn_max_idle_time": "5m",
		"database.conn_max_lifetime":  "30m",

		"auth.ttl": "168h",

		"log.level":            "info",
		"log.format":           "text",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/lifted.log",
		"log.file.max_size":    100,
		"log.file.max_backups": 3,
		"log.file.max_age":     28,
		"log.file.compress":    true,
	}
}

// Load builds the configuration with the following precedence (highest to
// lowest): environment variables with the LIFTED_ prefix, the YAML config
// file at path (skipped when absent), built-in defaults. The result is
// validated before being returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider("LIFTED_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "LIFTED_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists. A missing file
// is not an error; parse and read failures are.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
