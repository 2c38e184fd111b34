// Package db opens the relational store and keeps the schema current.
// The handle is created once at process start and passed down; nothing
// here holds package-level state.
package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates any missing tables. Ordered parents-first so foreign
// keys resolve.
func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Service{},
		&models.Component{},
		&models.Incident{},
		&models.IncidentUpdate{},
		&models.IncidentService{},
		&models.ScheduledMaintenance{},
		&models.MaintenanceUpdate{},
		&models.MaintenanceService{},
		&models.Setting{},
		&models.NotificationChannel{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
