package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type ComponentHandler struct {
	services *store.ServiceStore
}

func NewComponentHandler(services *store.ServiceStore) *ComponentHandler {
	return &ComponentHandler{services: services}
}

type CreateComponentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=operational degraded partial_outage major_outage"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"isVisible"`
}

type UpdateComponentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=operational degraded partial_outage major_outage"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}

func (h *ComponentHandler) List(ctx *gin.Context) {
	serviceID, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}

	components, err := h.services.ListComponents(ctx.Request.Context(), serviceID)
	if err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to fetch components")
		return
	}

	ctx.JSON(http.StatusOK, components)
}

func (h *ComponentHandler) Create(ctx *gin.Context) {
	serviceID, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}

	var req CreateComponentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	component, err := h.services.CreateComponent(ctx.Request.Context(), serviceID, store.CreateComponentParams{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ServiceStatus(req.Status),
		Order:       req.Order,
		IsVisible:   isVisible,
	})
	if err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to create component")
		return
	}

	ctx.JSON(http.StatusCreated, component)
}

func (h *ComponentHandler) Get(ctx *gin.Context) {
	serviceID, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}
	componentID, ok := idParam(ctx, "component_id", "component ID")
	if !ok {
		return
	}

	component, err := h.services.GetComponent(ctx.Request.Context(), serviceID, componentID)
	if err != nil {
		respondStoreError(ctx, err, "Component not found", "Failed to fetch component")
		return
	}

	ctx.JSON(http.StatusOK, component)
}

func (h *ComponentHandler) Update(ctx *gin.Context) {
	serviceID, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}
	componentID, ok := idParam(ctx, "component_id", "component ID")
	if !ok {
		return
	}

	var req UpdateComponentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.UpdateComponentParams{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
		IsVisible:   req.IsVisible,
	}
	if req.Status != nil {
		status := models.ServiceStatus(*req.Status)
		params.Status = &status
	}

	component, err := h.services.UpdateComponent(ctx.Request.Context(), serviceID, componentID, params)
	if err != nil {
		respondStoreError(ctx, err, "Component not found", "Failed to update component")
		return
	}

	ctx.JSON(http.StatusOK, component)
}

func (h *ComponentHandler) Delete(ctx *gin.Context) {
	serviceID, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}
	componentID, ok := idParam(ctx, "component_id", "component ID")
	if !ok {
		return
	}

	if err := h.services.DeleteComponent(ctx.Request.Context(), serviceID, componentID); err != nil {
		respondStoreError(ctx, err, "Component not found", "Failed to delete component")
		return
	}

	ctx.Status(http.StatusNoContent)
}
