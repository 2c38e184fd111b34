package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuspad-dev/statuspad/internal/models"
)

func TestParseSettingValue(t *testing.T) {
	v, err := models.ParseSettingValue(models.SettingString, json.RawMessage(`"Statuspad"`))
	require.NoError(t, err)
	assert.Equal(t, "Statuspad", v.Str)
	assert.Equal(t, "Statuspad", v.Encode())

	// A non-string scalar under a string type is stored verbatim.
	v, err = models.ParseSettingValue(models.SettingString, json.RawMessage(`42`))
	require.NoError(t, err)
	assert.Equal(t, "42", v.Str)

	v, err = models.ParseSettingValue(models.SettingNumber, json.RawMessage(`12.5`))
	require.NoError(t, err)
	assert.Equal(t, 12.5, v.Num)
	assert.Equal(t, "12.5", v.Encode())

	_, err = models.ParseSettingValue(models.SettingNumber, json.RawMessage(`"twelve"`))
	assert.Error(t, err)

	v, err = models.ParseSettingValue(models.SettingBoolean, json.RawMessage(`true`))
	require.NoError(t, err)
	assert.True(t, v.Bool)
	assert.Equal(t, "true", v.Encode())

	_, err = models.ParseSettingValue(models.SettingBoolean, json.RawMessage(`"yes"`))
	assert.Error(t, err)

	v, err = models.ParseSettingValue(models.SettingJSON, json.RawMessage(`{"links":["a","b"]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"links":["a","b"]}`, v.Encode())

	_, err = models.ParseSettingValue(models.SettingJSON, json.RawMessage(`{broken`))
	assert.Error(t, err)

	_, err = models.ParseSettingValue(models.SettingNumber, nil)
	assert.Error(t, err)

	_, err = models.ParseSettingValue("color", json.RawMessage(`"red"`))
	assert.Error(t, err)
}

func TestSettingTypedValue(t *testing.T) {
	assert.Equal(t, "hello",
		(&models.Setting{Type: models.SettingString, Value: "hello"}).TypedValue())

	assert.Equal(t, 30.5,
		(&models.Setting{Type: models.SettingNumber, Value: "30.5"}).TypedValue())

	assert.Equal(t, true,
		(&models.Setting{Type: models.SettingBoolean, Value: "true"}).TypedValue())

	assert.Equal(t, false,
		(&models.Setting{Type: models.SettingBoolean, Value: "nope"}).TypedValue())

	assert.Equal(t, json.RawMessage(`["a","b"]`),
		(&models.Setting{Type: models.SettingJSON, Value: `["a","b"]`}).TypedValue())

	// Corrupt stored text degrades to the raw string instead of failing.
	assert.Equal(t, "not a number",
		(&models.Setting{Type: models.SettingNumber, Value: "not a number"}).TypedValue())
	assert.Equal(t, "{broken",
		(&models.Setting{Type: models.SettingJSON, Value: "{broken"}).TypedValue())
}
