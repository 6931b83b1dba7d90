package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable the service reads
const EnvPrefix = "PL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps short environment variable names onto config keys.
// Every key can also be set through PL_<SECTION>_<KEY>.
var envOverrides = map[string]string{
	"PL_DB_HOST":            "database.host",
	"PL_DB_PORT":            "database.port",
	"PL_DB_USERNAME":        "database.username",
	"PL_DB_PASSWORD":        "database.password",
	"PL_DB_NAME":            "database.database",
	"PL_DB_SSL_MODE":        "database.sslMode",
	"PL_DB_AUTO_MIGRATE":    "database.autoMigrate",
	"PL_SERVER_HOST":        "server.host",
	"PL_SERVER_PORT":        "server.port",
	"PL_LOGGER_LEVEL":       "logger.level",
	"PL_STORAGE_DRIVER":     "storage.driver",
	"PL_LOCK_TIMEOUT_MS":    "ledger.lockTimeoutMs",
	"PL_REQUEST_TIMEOUT_MS": "ledger.requestTimeoutMs",
	"PL_METRICS_ENABLED":    "metrics.enabled",
}

// LoadConfig loads configuration for the environment named by PL_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the first of paths that has it,
// applies defaults and environment overrides, and validates the result.
// A missing file is not an error; defaults and environment apply alone.
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for envName, key := range envOverrides {
		if value, ok := os.LookupEnv(envName); ok && value != "" {
			v.Set(key, value)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.Storage.Driver = strings.ToLower(config.Storage.Driver)
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("storage.driver", StorageMemory)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.txRetryAttempts", 3)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ledger.lockTimeoutMs", 0)
	v.SetDefault("ledger.requestTimeoutMs", 10000)

	v.SetDefault("metrics.enabled", true)
}

// getEnvironment determines the environment to use based on PL_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts the raw unit counts of duration fields into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute

	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
}
