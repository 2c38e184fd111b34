package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

func seedContent(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	api := createService(t, gdb, "API", models.StatusOperational)

	_, err := store.NewServiceStore(gdb).CreateComponent(context.Background(), api.ID, store.CreateComponentParams{
		Name:      "Public endpoint",
		IsVisible: true,
	})
	require.NoError(t, err)

	_, err = store.NewIncidentStore(gdb).Create(context.Background(), store.CreateIncidentParams{
		Title:      "API down",
		ServiceIDs: []uint{api.ID},
	})
	require.NoError(t, err)

	start := time.Now().Add(time.Hour)
	_, err = store.NewMaintenanceStore(gdb).Create(context.Background(), store.CreateMaintenanceParams{
		Title:              "API upgrade",
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(time.Hour),
		ServiceIDs:         []uint{api.ID},
	})
	require.NoError(t, err)

	require.NoError(t, store.NewSettingStore(gdb).Upsert(context.Background(), store.UpsertSettingParams{
		Key:   "site_title",
		Value: models.SettingValue{Type: models.SettingString, Str: "Statuspad"},
	}))
}

func TestExportImportRoundTrip(t *testing.T) {
	source := openTestDB(t)
	seedContent(t, source)

	snapshot, err := store.NewAdminStore(source).Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0", snapshot.Version)
	assert.Len(t, snapshot.Data.Services, 1)
	assert.Len(t, snapshot.Data.Components, 1)
	assert.Len(t, snapshot.Data.Incidents, 1)
	assert.Len(t, snapshot.Data.IncidentUpdates, 1)
	assert.Len(t, snapshot.Data.IncidentServices, 1)
	assert.Len(t, snapshot.Data.Maintenance, 1)
	assert.Len(t, snapshot.Data.Settings, 1)

	target := openTestDB(t)
	result, err := store.NewAdminStore(target).Import(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, 9, result.Inserted)

	stats, err := store.NewAdminStore(target).Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Services)
	assert.EqualValues(t, 1, stats.Components)
	assert.EqualValues(t, 1, stats.Incidents)
	assert.EqualValues(t, 1, stats.Maintenance)
}

func TestImportSkipsConflictingRows(t *testing.T) {
	gdb := openTestDB(t)
	seedContent(t, gdb)
	admin := store.NewAdminStore(gdb)

	snapshot, err := admin.Export(context.Background())
	require.NoError(t, err)

	// Importing into the same database collides on every primary key.
	result, err := admin.Import(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Zero(t, result.Inserted)
	assert.Equal(t, 9, result.Skipped)
}

func TestResetClearsContentButKeepsUsers(t *testing.T) {
	gdb := openTestDB(t)
	seedContent(t, gdb)

	_, err := store.NewUserStore(gdb).Create(context.Background(), store.CreateUserParams{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	admin := store.NewAdminStore(gdb)
	require.NoError(t, admin.Reset(context.Background()))

	stats, err := admin.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Services)
	assert.Zero(t, stats.Components)
	assert.Zero(t, stats.Incidents)
	assert.Zero(t, stats.Maintenance)

	var settings, users int64
	require.NoError(t, gdb.Model(&models.Setting{}).Count(&settings).Error)
	require.NoError(t, gdb.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, settings)
	assert.EqualValues(t, 1, users)
}
