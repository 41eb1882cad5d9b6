package config

import (
	"fmt"
	"os"
)

// Config holds application configuration.
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	CORSOrigin    string
	MigrationsDir string
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=tinybigcorp sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:4200"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
