package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no tripsplit variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		"TRIPSPLIT_SERVER_PORT", "TRIPSPLIT_SERVER_STATICPATH", "TRIPSPLIT_DATABASE_DRIVER",
		"TRIPSPLIT_DATABASE_PATH", "TRIPSPLIT_LOG_LEVEL", "TRIPSPLIT_LEDGER_CURRENCYSYMBOL",
		"PORT", "STATIC_PATH", "DB_PATH", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.Server.StaticPath)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./data/trips.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "₹", cfg.Ledger.CurrencySymbol)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := isolate(t)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 9000
database:
  path: /var/lib/tripsplit/trips.db
ledger:
  currencySymbol: "$"
`), 0o600))

	t.Setenv("TRIPSPLIT_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"--port", "9100"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "flag beats file")
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path, "env beats file")
	assert.Equal(t, "debug", cfg.Log.Level, "legacy env name")
	assert.Equal(t, "$", cfg.Ledger.CurrencySymbol, "file beats default")
	assert.Equal(t, DriverSQLite, cfg.Database.Driver, "unchanged flag keeps default")
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tripsplit.yaml"), []byte("database:\n  driver: memory\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRIPSPLIT_SERVER_PORT=7070\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   Server{Port: 8080},
			Database: Database{Driver: DriverSQLite, Path: "trips.db"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid sqlite", func(*Config) {}, true},
		{"memory needs no path", func(c *Config) { c.Database = Database{Driver: DriverMemory} }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, false},
		{"sqlite without path", func(c *Config) { c.Database.Path = "" }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
