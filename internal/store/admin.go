package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
)

// AdminStore implements the database maintenance actions: export, import,
// and reset. Users are deliberately excluded from all three so an import
// or reset can never lock the operator out.
type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

// Snapshot is the export/import wire format: one slice per table.
type Snapshot struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exportedAt"`
	Data       SnapshotData `json:"data"`
}

type SnapshotData struct {
	Services             []models.Service              `json:"services"`
	Components           []models.Component            `json:"components"`
	Incidents            []models.Incident             `json:"incidents"`
	IncidentUpdates      []models.IncidentUpdate       `json:"incidentUpdates"`
	IncidentServices     []models.IncidentService      `json:"incidentServices"`
	Maintenance          []models.ScheduledMaintenance `json:"maintenance"`
	MaintenanceUpdates   []models.MaintenanceUpdate    `json:"maintenanceUpdates"`
	MaintenanceServices  []models.MaintenanceService   `json:"maintenanceServices"`
	Settings             []models.Setting              `json:"settings"`
	NotificationChannels []models.NotificationChannel  `json:"notificationChannels"`
}

// ImportResult counts what the best-effort import did per table.
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Stats reports row counts per table, used by the database status view.
type Stats struct {
	Services    int64 `json:"services"`
	Components  int64 `json:"components"`
	Incidents   int64 `json:"incidents"`
	Maintenance int64 `json:"maintenance"`
}

func (s *AdminStore) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	counts := []struct {
		model interface{}
		out   *int64
	}{
		{&models.Service{}, &stats.Services},
		{&models.Component{}, &stats.Components},
		{&models.Incident{}, &stats.Incidents},
		{&models.ScheduledMaintenance{}, &stats.Maintenance},
	}

	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.out).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// Export dumps every table into a snapshot.
func (s *AdminStore) Export(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
	}

	db := s.db.WithContext(ctx)

	if err := db.Find(&snapshot.Data.Services).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.Components).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.Incidents).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.IncidentUpdates).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.IncidentServices).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.Maintenance).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.MaintenanceUpdates).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.MaintenanceServices).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.Settings).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&snapshot.Data.NotificationChannels).Error; err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Import inserts snapshot rows in dependency order, parents before
// children. Each row is inserted on its own; a row that conflicts with an
// existing one is skipped and counted, never failing the batch.
func (s *AdminStore) Import(ctx context.Context, snapshot *Snapshot) (*ImportResult, error) {
	result := &ImportResult{}

	importRows(ctx, s.db, result, snapshot.Data.Settings)
	importRows(ctx, s.db, result, snapshot.Data.Services)
	importRows(ctx, s.db, result, snapshot.Data.Components)
	importRows(ctx, s.db, result, snapshot.Data.Incidents)
	importRows(ctx, s.db, result, snapshot.Data.IncidentUpdates)
	importRows(ctx, s.db, result, snapshot.Data.IncidentServices)
	importRows(ctx, s.db, result, snapshot.Data.Maintenance)
	importRows(ctx, s.db, result, snapshot.Data.MaintenanceUpdates)
	importRows(ctx, s.db, result, snapshot.Data.MaintenanceServices)
	importRows(ctx, s.db, result, snapshot.Data.NotificationChannels)

	return result, nil
}

func importRows[T any](ctx context.Context, db *gorm.DB, result *ImportResult, rows []T) {
	for i := range rows {
		if err := db.WithContext(ctx).Create(&rows[i]).Error; err != nil {
			log.Debug().Err(err).Msg("import: skipping conflicting row")
			result.Skipped++
			continue
		}
		result.Inserted++
	}
}

// Reset hard-deletes every row from every content table, children first.
func (s *AdminStore) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ordered := []interface{}{
			&models.IncidentUpdate{},
			&models.IncidentService{},
			&models.MaintenanceUpdate{},
			&models.MaintenanceService{},
			&models.Component{},
			&models.Incident{},
			&models.ScheduledMaintenance{},
			&models.Service{},
			&models.NotificationChannel{},
			&models.Setting{},
		}

		for _, model := range ordered {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
