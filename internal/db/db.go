package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"askmate/internal/data"
	"askmate/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the pooled gorm handle and runs migrations. The handle is
// returned to the caller instead of being parked in a package global, so
// everything downstream takes it as an explicit dependency and tests can
// substitute their own database.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", data.ErrUnavailable, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A bounded ping so a dead database fails fast instead of hanging.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", data.ErrUnavailable, err)
	}

	log.Println("Database connection established")

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Comment{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Println("Database migration completed")

	return gdb, nil
}
