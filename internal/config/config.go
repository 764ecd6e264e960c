package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Storage drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the application configuration.
type Config struct {
	AppPort        string
	DBDriver       string
	DatabaseDSN    string
	DBLogLevel     string
	AutoMigrate    bool
	RabbitMQURL    string
	EventsConsumer bool
	BcryptCost     int
	SeedItems      bool
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:arena.db?_foreign_keys=1")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_CONSUMER", false)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("SEED_ITEMS", false)
}

// Load reads the configuration from v (defaults plus environment) and validates it.
// Variables from a .env file in the working directory are loaded first; they
// never override variables already set in the environment.
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		DBLogLevel:     strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		EventsConsumer: v.GetBool("EVENTS_CONSUMER"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		SeedItems:      v.GetBool("SEED_ITEMS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN must be set for driver %s", c.DBDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}

	if c.EventsConsumer && c.RabbitMQURL == "" {
		return fmt.Errorf("EVENTS_CONSUMER requires RABBITMQ_URL")
	}
	return nil
}

// EventsEnabled reports whether domain events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

