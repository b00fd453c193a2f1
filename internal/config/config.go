package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Postgres connection parameters, used when DB_DRIVER=pgx and
	// DB_CONNECTION is not set explicitly.
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	// Logging
	LogFile string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "FitFusion"),
		AppEnv:  envString("APP_ENV", "development"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fitfusion.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		DBHost:       envString("DB_HOST", "localhost"),
		DBPort:       envString("DB_PORT", "5432"),
		DBName:       envString("DB_NAME", "FitnessAppDB"),
		DBUser:       envString("DB_USER", "postgres"),
		DBPassword:   envString("DB_PASSWORD", ""),

		// Logging
		LogFile: envString("LOG_FILE", "./logs/fitfusion.log"),
	}

	// Postgres: assemble the connection string from the individual
	// parameters unless one was given outright.
	if cfg.DBDriver == "pgx" && os.Getenv("DB_CONNECTION") == "" {
		cfg.DBConnection = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
