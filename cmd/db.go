package cmd

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/assignmentrepo"
	"foodorder/internal/adapters/out/postgres/catalog"
	"foodorder/internal/adapters/out/postgres/ledgerrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
)

// CreateDBIfNotExists connects to the postgres maintenance database and
// creates the application database when it is missing.
func CreateDBIfNotExists(cfg Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		// Database names cannot be bound as parameters.
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", cfg.DBName)); err != nil {
			return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
		}
	}

	return nil
}

// OpenDB opens the gorm connection and migrates the schema.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignmentDTO{},
		&reviewrepo.ReviewDTO{},
		&ledgerrepo.EntryDTO{},
		&ledgerrepo.ReportDTO{},
		&catalog.MenuItemDTO{},
		&postgres.UserDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
