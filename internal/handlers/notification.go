package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/statuspad-dev/statuspad/internal/store"
)

type NotificationHandler struct {
	notifications *store.NotificationStore
}

func NewNotificationHandler(notifications *store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type CreateChannelRequest struct {
	Name     string         `json:"name" binding:"required"`
	Type     string         `json:"type" binding:"required,oneof=webhook email"`
	Config   datatypes.JSON `json:"config"`
	IsActive *bool          `json:"isActive"`
}

type UpdateChannelRequest struct {
	Name     *string        `json:"name"`
	Type     *string        `json:"type" binding:"omitempty,oneof=webhook email"`
	Config   datatypes.JSON `json:"config"`
	IsActive *bool          `json:"isActive"`
}

func (h *NotificationHandler) List(ctx *gin.Context) {
	channels, err := h.notifications.List(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list notification channels")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notification channels"})
		return
	}

	ctx.JSON(http.StatusOK, channels)
}

func (h *NotificationHandler) Create(ctx *gin.Context) {
	var req CreateChannelRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	channel, err := h.notifications.Create(ctx.Request.Context(), store.CreateChannelParams{
		Name:     req.Name,
		Type:     req.Type,
		Config:   req.Config,
		IsActive: isActive,
	})
	if err != nil {
		respondStoreError(ctx, err, "Notification channel not found", "Failed to create notification channel")
		return
	}

	ctx.JSON(http.StatusCreated, channel)
}

func (h *NotificationHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "channel ID")
	if !ok {
		return
	}

	var req UpdateChannelRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel, err := h.notifications.Update(ctx.Request.Context(), id, store.UpdateChannelParams{
		Name:     req.Name,
		Type:     req.Type,
		Config:   req.Config,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondStoreError(ctx, err, "Notification channel not found", "Failed to update notification channel")
		return
	}

	ctx.JSON(http.StatusOK, channel)
}

func (h *NotificationHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "channel ID")
	if !ok {
		return
	}

	if err := h.notifications.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Notification channel not found", "Failed to delete notification channel")
		return
	}

	ctx.Status(http.StatusNoContent)
}
