package pkg

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UNI-F-2025/campus-service/internal/config"
	"github.com/UNI-F-2025/campus-service/internal/models"
)

// InitDatabase opens the Postgres connection, configures pooling and runs
// migrations. TranslateError is on so duplicate-key violations surface as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := logger.Warn
	if cfg.Environment == "development" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table, including the cascading foreign
// keys declared on the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Campus{},
		&models.User{},
		&models.Career{},
		&models.Course{},
		&models.CourseResource{},
		&models.Enrollment{},
		&models.AttendanceRecord{},
		&models.Scholarship{},
		&models.ScholarshipApplication{},
		&models.Notification{},
	)
}
