// Package config loads tripsplit settings from defaults, an optional YAML file,
// a .env file, TRIPSPLIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"

	envPrefix = "TRIPSPLIT"
	dotEnv    = ".env"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid config")

// Config holds the application configuration
type Config struct {
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Log      Log      `mapstructure:"log"`
	Ledger   Ledger   `mapstructure:"ledger"`
}

// Server configuration
type Server struct {
	Port int `mapstructure:"port"`
	// StaticPath is a directory of frontend files served on /. Empty disables it.
	StaticPath string `mapstructure:"staticPath"`
}

// Database configuration
type Database struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// Log configuration
type Log struct {
	Level string `mapstructure:"level"`
}

// Ledger configuration
type Ledger struct {
	CurrencySymbol string `mapstructure:"currencySymbol"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"port":      "server.port",
	"static":    "server.staticPath",
	"db-driver": "database.driver",
	"db":        "database.path",
	"log-level": "log.level",
	"currency":  "ledger.currencySymbol",
}

// BindFlags registers the flags Load knows about on flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.Int("port", 8080, "HTTP listen port")
	flags.String("static", "", "directory of static frontend files")
	flags.String("db-driver", DriverSQLite, "storage driver: sqlite or memory")
	flags.String("db", "./data/trips.db", "SQLite database path")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("currency", "₹", "currency symbol used in text output")
}

// Load reads the configuration. configFile may be empty, in which case
// tripsplit.yaml is picked up from the working directory if present.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotEnv, err)
	}

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.staticPath", "")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "./data/trips.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("ledger.currencySymbol", "₹")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("tripsplit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Environment variables (with prefix), e.g. TRIPSPLIT_DATABASE_PATH
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments
	_ = v.BindEnv("server.port", envPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.staticPath", envPrefix+"_SERVER_STATICPATH", "STATIC_PATH")
	_ = v.BindEnv("database.path", envPrefix+"_DATABASE_PATH", "DB_PATH")
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalid, c.Server.Port)
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite driver", ErrInvalid)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown database.driver %q", ErrInvalid, c.Database.Driver)
	}
	return nil
}
