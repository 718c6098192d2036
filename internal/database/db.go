package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/jobtrackr/internal/models"
)

// Connect opens the Postgres connection and keeps the schema current.
// TranslateError is on so a duplicate email surfaces as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables in Postgres automatically.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.JobApplication{}, &models.Resume{}); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
