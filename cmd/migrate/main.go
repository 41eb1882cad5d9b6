package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/tinybigcorp/user-service/internal/config"
	"github.com/tinybigcorp/user-service/internal/migration"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	migrations, err := migration.Load(cfg.MigrationsDir)
	if err != nil {
		logger.Fatalf("Failed to load migrations: %v", err)
	}
	if len(migrations) == 0 {
		logger.Warnf("No migrations found in %s", cfg.MigrationsDir)
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Infof("Applying migrations from %s", cfg.MigrationsDir)
	applied, err := migration.Apply(ctx, db, migrations)
	if err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	logger.Infof("Migrations applied: %d (up to date: %d)", applied, len(migrations))
}
