package config

import (
	"os"
	"strconv"

	"github.com/ak-pc/Dextro/internal/errors"
)

// Supported values for DATALAKE_DRIVER.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
)

// Config is the process configuration, read once at startup.
type Config struct {
	SupabaseURL string // SUPABASE_URL — backend endpoint
	SupabaseKey string // SUPABASE_ANON_KEY — access credential
	Driver      string // DATALAKE_DRIVER — "supabase" (default) or "postgres"
	DatabaseURL string // DATABASE_URL — DSN for the postgres driver
	Port        string // PORT — listen port, default 8080
	MaxRows     int    // DATALAKE_MAX_ROWS — fetch cap, 0 = unlimited
}

// Load reads the configuration from the environment. It never fails:
// missing values surface later as a ConfigurationError on the page, not as
// a startup crash.
func Load() Config {
	cfg := Config{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_ANON_KEY"),
		Driver:      os.Getenv("DATALAKE_DRIVER"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSupabase
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("DATALAKE_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRows = n
		}
	}
	return cfg
}

// Validate checks that the values the active driver needs are present.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.NewMissingConfigError("DATABASE_URL")
		}
	case DriverSupabase:
		var missing []string
		if c.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if c.SupabaseKey == "" {
			missing = append(missing, "SUPABASE_ANON_KEY")
		}
		if len(missing) > 0 {
			return errors.NewMissingConfigError(missing...)
		}
	default:
		return errors.NewInvalidConfigError("unsupported driver " + strconv.Quote(c.Driver))
	}
	return nil
}
