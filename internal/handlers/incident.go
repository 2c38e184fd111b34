package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type IncidentHandler struct {
	incidents *store.IncidentStore
}

func NewIncidentHandler(incidents *store.IncidentStore) *IncidentHandler {
	return &IncidentHandler{incidents: incidents}
}

type CreateIncidentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Impact      string `json:"impact" binding:"omitempty,oneof=none minor major critical"`
	ServiceIDs  []uint `json:"serviceIds"`
}

type UpdateIncidentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=investigating identified monitoring resolved"`
	Impact      *string `json:"impact" binding:"omitempty,oneof=none minor major critical"`
}

type AppendIncidentUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=investigating identified monitoring resolved"`
}

func (h *IncidentHandler) List(ctx *gin.Context) {
	incidents, err := h.incidents.List(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list incidents")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch incidents"})
		return
	}

	ctx.JSON(http.StatusOK, incidents)
}

func (h *IncidentHandler) Create(ctx *gin.Context) {
	var req CreateIncidentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidents.Create(ctx.Request.Context(), store.CreateIncidentParams{
		Title:       req.Title,
		Description: req.Description,
		Impact:      models.Impact(req.Impact),
		ServiceIDs:  req.ServiceIDs,
	})
	if err != nil {
		respondStoreError(ctx, err, "Incident not found", "Failed to create incident")
		return
	}

	ctx.JSON(http.StatusCreated, incident)
}

func (h *IncidentHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "incident ID")
	if !ok {
		return
	}

	incident, err := h.incidents.Get(ctx.Request.Context(), id)
	if err != nil {
		respondStoreError(ctx, err, "Incident not found", "Failed to fetch incident")
		return
	}

	ctx.JSON(http.StatusOK, incident)
}

func (h *IncidentHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "incident ID")
	if !ok {
		return
	}

	var req UpdateIncidentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.UpdateIncidentParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.IncidentStatus(*req.Status)
		params.Status = &status
	}
	if req.Impact != nil {
		impact := models.Impact(*req.Impact)
		params.Impact = &impact
	}

	incident, err := h.incidents.Update(ctx.Request.Context(), id, params)
	if err != nil {
		respondStoreError(ctx, err, "Incident not found", "Failed to update incident")
		return
	}

	ctx.JSON(http.StatusOK, incident)
}

func (h *IncidentHandler) ListUpdates(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "incident ID")
	if !ok {
		return
	}

	updates, err := h.incidents.ListUpdates(ctx.Request.Context(), id)
	if err != nil {
		respondStoreError(ctx, err, "Incident not found", "Failed to fetch incident updates")
		return
	}

	ctx.JSON(http.StatusOK, updates)
}

func (h *IncidentHandler) AppendUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "incident ID")
	if !ok {
		return
	}

	var req AppendIncidentUpdateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := h.incidents.AppendUpdate(ctx.Request.Context(), id, store.AppendIncidentUpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.IncidentStatus(req.Status),
	})
	if err != nil {
		respondStoreError(ctx, err, "Incident not found", "Failed to create incident update")
		return
	}

	ctx.JSON(http.StatusCreated, update)
}
