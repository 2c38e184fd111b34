package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

func TestUpsertSettingCreatesAndReplaces(t *testing.T) {
	gdb := openTestDB(t)
	settings := store.NewSettingStore(gdb)

	err := settings.Upsert(context.Background(), store.UpsertSettingParams{
		Key:         "site_title",
		Value:       models.SettingValue{Type: models.SettingString, Str: "Statuspad"},
		Description: "Page heading",
	})
	require.NoError(t, err)

	setting, err := settings.Get(context.Background(), "site_title")
	require.NoError(t, err)
	assert.Equal(t, "Statuspad", setting.Value)
	assert.Equal(t, models.SettingString, setting.Type)

	// Same key again replaces value, type, and description.
	err = settings.Upsert(context.Background(), store.UpsertSettingParams{
		Key:   "site_title",
		Value: models.SettingValue{Type: models.SettingBoolean, Bool: true},
	})
	require.NoError(t, err)

	setting, err = settings.Get(context.Background(), "site_title")
	require.NoError(t, err)
	assert.Equal(t, "true", setting.Value)
	assert.Equal(t, models.SettingBoolean, setting.Type)
	assert.Equal(t, true, setting.TypedValue())

	var count int64
	require.NoError(t, gdb.Model(&models.Setting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertSettingValidation(t *testing.T) {
	gdb := openTestDB(t)
	settings := store.NewSettingStore(gdb)

	err := settings.Upsert(context.Background(), store.UpsertSettingParams{
		Key:   "  ",
		Value: models.SettingValue{Type: models.SettingString, Str: "x"},
	})
	assert.True(t, store.IsValidation(err))

	err = settings.Upsert(context.Background(), store.UpsertSettingParams{
		Key:   "site_title",
		Value: models.SettingValue{Type: "color", Str: "x"},
	})
	assert.True(t, store.IsValidation(err))
}

func TestUpsertBatchAbortsBeforeAnyWrite(t *testing.T) {
	gdb := openTestDB(t)
	settings := store.NewSettingStore(gdb)

	err := settings.UpsertBatch(context.Background(), []store.UpsertSettingParams{
		{Key: "site_title", Value: models.SettingValue{Type: models.SettingString, Str: "Statuspad"}},
		{Key: "refresh_seconds", Value: models.SettingValue{Type: "interval", Num: 30}},
	})
	assert.True(t, store.IsValidation(err))

	var count int64
	require.NoError(t, gdb.Model(&models.Setting{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpsertBatchWritesAllKeys(t *testing.T) {
	gdb := openTestDB(t)
	settings := store.NewSettingStore(gdb)

	err := settings.UpsertBatch(context.Background(), []store.UpsertSettingParams{
		{Key: "site_title", Value: models.SettingValue{Type: models.SettingString, Str: "Statuspad"}},
		{Key: "refresh_seconds", Value: models.SettingValue{Type: models.SettingNumber, Num: 30}},
		{Key: "show_uptime", Value: models.SettingValue{Type: models.SettingBoolean, Bool: false}},
	})
	require.NoError(t, err)

	list, err := settings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	refresh, err := settings.Get(context.Background(), "refresh_seconds")
	require.NoError(t, err)
	assert.Equal(t, "30", refresh.Value)
	assert.Equal(t, float64(30), refresh.TypedValue())
}
