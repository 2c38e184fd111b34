package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type SettingHandler struct {
	settings *store.SettingStore
}

func NewSettingHandler(settings *store.SettingStore) *SettingHandler {
	return &SettingHandler{settings: settings}
}

type UpsertSettingRequest struct {
	Key         string          `json:"key" binding:"required"`
	Value       json.RawMessage `json:"value" binding:"required"`
	Type        string          `json:"type" binding:"omitempty,oneof=string number boolean json"`
	Description string          `json:"description"`
}

type SettingEntry struct {
	Value       json.RawMessage `json:"value"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

type BatchSettingsRequest struct {
	Settings map[string]SettingEntry `json:"settings" binding:"required"`
}

type SettingResponse struct {
	Value       interface{}        `json:"value"`
	Type        models.SettingType `json:"type"`
	Description string             `json:"description"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// List returns every setting keyed by name with its decoded typed value.
func (h *SettingHandler) List(ctx *gin.Context) {
	settings, err := h.settings.List(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list settings")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	response := make(map[string]SettingResponse, len(settings))
	for i := range settings {
		setting := &settings[i]
		response[setting.Key] = SettingResponse{
			Value:       setting.TypedValue(),
			Type:        setting.Type,
			Description: setting.Description,
			UpdatedAt:   setting.UpdatedAt,
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// Upsert writes a single key.
func (h *SettingHandler) Upsert(ctx *gin.Context) {
	var req UpsertSettingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settingType := models.SettingType(req.Type)
	if settingType == "" {
		settingType = models.SettingString
	}

	value, err := models.ParseSettingValue(settingType, req.Value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.Upsert(ctx.Request.Context(), store.UpsertSettingParams{
		Key:         req.Key,
		Value:       value,
		Description: req.Description,
	}); err != nil {
		respondStoreError(ctx, err, "Setting not found", "Failed to save setting")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// UpsertBatch writes several keys in one call.
func (h *SettingHandler) UpsertBatch(ctx *gin.Context) {
	var req BatchSettingsRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch := make([]store.UpsertSettingParams, 0, len(req.Settings))

	for key, entry := range req.Settings {
		settingType := models.SettingType(entry.Type)
		if settingType == "" {
			settingType = models.SettingString
		}

		value, err := models.ParseSettingValue(settingType, entry.Value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": key + ": " + err.Error()})
			return
		}

		batch = append(batch, store.UpsertSettingParams{
			Key:         key,
			Value:       value,
			Description: entry.Description,
		})
	}

	if err := h.settings.UpsertBatch(ctx.Request.Context(), batch); err != nil {
		respondStoreError(ctx, err, "Setting not found", "Failed to save settings")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
