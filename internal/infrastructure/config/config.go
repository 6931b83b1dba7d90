package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects the balance store and history log backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

// DatabaseConfig contains database connection settings, used by the postgres driver
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	// TxRetryAttempts bounds the runs of a transaction that hits a serialization failure or deadlock
	TxRetryAttempts int  `mapstructure:"txRetryAttempts"`
	AutoMigrate     bool `mapstructure:"autoMigrate"`
}

// DSN returns the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode)
}

// SafeDSN returns a connection URL with the password masked, for logs
func (d DatabaseConfig) SafeDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.Username, "****"),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Database,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// LedgerConfig contains settings of the ledger service
type LedgerConfig struct {
	// LockTimeoutMs bounds the wait for a busy user; 0 waits for the request context
	LockTimeoutMs int64 `mapstructure:"lockTimeoutMs"`
	// RequestTimeoutMs bounds every API request; 0 disables the deadline
	RequestTimeoutMs int64 `mapstructure:"requestTimeoutMs"`
}

// LockTimeout returns LockTimeoutMs as a duration
func (l LedgerConfig) LockTimeout() time.Duration {
	return time.Duration(l.LockTimeoutMs) * time.Millisecond
}

// RequestTimeout returns RequestTimeoutMs as a duration
func (l LedgerConfig) RequestTimeout() time.Duration {
	return time.Duration(l.RequestTimeoutMs) * time.Millisecond
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks the settings that have no safe default
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Ledger.LockTimeoutMs < 0 {
		return fmt.Errorf("ledger.lockTimeoutMs must not be negative: %d", c.Ledger.LockTimeoutMs)
	}
	if c.Ledger.RequestTimeoutMs < 0 {
		return fmt.Errorf("ledger.requestTimeoutMs must not be negative: %d", c.Ledger.RequestTimeoutMs)
	}

	switch strings.ToLower(c.Storage.Driver) {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for the %s storage driver", StoragePostgres)
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database.database is required for the %s storage driver", StoragePostgres)
		}
		if c.Database.Username == "" {
			return fmt.Errorf("database.username is required for the %s storage driver", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}
