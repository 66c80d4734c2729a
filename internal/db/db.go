package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Models lists every table AutoMigrate manages, in dependency order.
var Models = []any{
	&models.Store{},
	&models.Worker{},
	&models.AvailabilitySlot{},
	&models.Client{},
	&models.Friendship{},
	&models.Appointment{},
	&models.AuditLog{},
}

func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	res := db.Exec(
		`UPDATE stores SET timezone = ? WHERE timezone IS NULL OR timezone = ''`,
		cfg.DefaultTimezone,
	)
	if res.Error != nil {
		return nil, fmt.Errorf("backfill store timezone: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Info("backfilled store timezone", "stores", res.RowsAffected, "timezone", cfg.DefaultTimezone)
	}

	return db, nil
}
