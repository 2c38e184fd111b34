package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type MaintenanceHandler struct {
	maintenances *store.MaintenanceStore
}

func NewMaintenanceHandler(maintenances *store.MaintenanceStore) *MaintenanceHandler {
	return &MaintenanceHandler{maintenances: maintenances}
}

type CreateMaintenanceRequest struct {
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	Impact             string     `json:"impact" binding:"omitempty,oneof=none minor major critical"`
	ScheduledStartTime *time.Time `json:"scheduledStartTime" binding:"required"`
	ScheduledEndTime   *time.Time `json:"scheduledEndTime" binding:"required"`
	ServiceIDs         []uint     `json:"serviceIds"`
}

type UpdateMaintenanceRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Status             *string    `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Impact             *string    `json:"impact" binding:"omitempty,oneof=none minor major critical"`
	ScheduledStartTime *time.Time `json:"scheduledStartTime"`
	ScheduledEndTime   *time.Time `json:"scheduledEndTime"`
	ActualStartTime    *time.Time `json:"actualStartTime"`
	ActualEndTime      *time.Time `json:"actualEndTime"`
}

type AppendMaintenanceUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=scheduled in_progress completed cancelled"`
}

func (h *MaintenanceHandler) List(ctx *gin.Context) {
	params := store.ListMaintenanceParams{
		Upcoming: ctx.Query("upcoming") == "true",
	}
	if statusQuery := ctx.Query("status"); statusQuery != "" {
		status := models.MaintenanceStatus(statusQuery)
		params.Status = &status
	}

	maintenances, err := h.maintenances.List(ctx.Request.Context(), params)
	if err != nil {
		if store.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("failed to list maintenance")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance"})
		return
	}

	ctx.JSON(http.StatusOK, maintenances)
}

func (h *MaintenanceHandler) Create(ctx *gin.Context) {
	var req CreateMaintenanceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maintenance, err := h.maintenances.Create(ctx.Request.Context(), store.CreateMaintenanceParams{
		Title:              req.Title,
		Description:        req.Description,
		Impact:             models.Impact(req.Impact),
		ScheduledStartTime: *req.ScheduledStartTime,
		ScheduledEndTime:   *req.ScheduledEndTime,
		ServiceIDs:         req.ServiceIDs,
	})
	if err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to create maintenance")
		return
	}

	ctx.JSON(http.StatusCreated, maintenance)
}

func (h *MaintenanceHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "maintenance ID")
	if !ok {
		return
	}

	maintenance, err := h.maintenances.Get(ctx.Request.Context(), id)
	if err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to fetch maintenance")
		return
	}

	ctx.JSON(http.StatusOK, maintenance)
}

func (h *MaintenanceHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "maintenance ID")
	if !ok {
		return
	}

	var req UpdateMaintenanceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.UpdateMaintenanceParams{
		Title:              req.Title,
		Description:        req.Description,
		ScheduledStartTime: req.ScheduledStartTime,
		ScheduledEndTime:   req.ScheduledEndTime,
		ActualStartTime:    req.ActualStartTime,
		ActualEndTime:      req.ActualEndTime,
	}
	if req.Status != nil {
		status := models.MaintenanceStatus(*req.Status)
		params.Status = &status
	}
	if req.Impact != nil {
		impact := models.Impact(*req.Impact)
		params.Impact = &impact
	}

	maintenance, err := h.maintenances.Update(ctx.Request.Context(), id, params)
	if err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to update maintenance")
		return
	}

	ctx.JSON(http.StatusOK, maintenance)
}

func (h *MaintenanceHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "maintenance ID")
	if !ok {
		return
	}

	if err := h.maintenances.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to delete maintenance")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Maintenance deleted successfully"})
}

func (h *MaintenanceHandler) ListUpdates(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "maintenance ID")
	if !ok {
		return
	}

	updates, err := h.maintenances.ListUpdates(ctx.Request.Context(), id)
	if err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to fetch maintenance updates")
		return
	}

	ctx.JSON(http.StatusOK, updates)
}

func (h *MaintenanceHandler) AppendUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "maintenance ID")
	if !ok {
		return
	}

	var req AppendMaintenanceUpdateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := h.maintenances.AppendUpdate(ctx.Request.Context(), id, store.AppendMaintenanceUpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.MaintenanceStatus(req.Status),
	})
	if err != nil {
		respondStoreError(ctx, err, "Maintenance not found", "Failed to create maintenance update")
		return
	}

	ctx.JSON(http.StatusCreated, update)
}
