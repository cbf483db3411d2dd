package gorm

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentwise/property-system/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing a database connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a PostgreSQL connection pool and validates connectivity
// with a ping. TranslateError is enabled so unique-constraint violations
// surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every domain model. The tenancy
// join table is registered first so the many-to-many between tenant profiles
// and units carries the move-in/move-out columns.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.TenantProfile{}, "Units", &domain.TenancyAssignment{}); err != nil {
		return fmt.Errorf("setup tenancy join table: %w", err)
	}
	return db.AutoMigrate(
		&domain.Account{},
		&domain.Property{},
		&domain.Unit{},
		&domain.TenantProfile{},
		&domain.TenancyAssignment{},
		&domain.ManagerProfile{},
		&domain.CaretakerProfile{},
		&domain.Payment{},
		&domain.MaintenanceRequest{},
	)
}
