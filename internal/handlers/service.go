package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type ServiceHandler struct {
	services *store.ServiceStore
}

func NewServiceHandler(services *store.ServiceStore) *ServiceHandler {
	return &ServiceHandler{services: services}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=operational degraded partial_outage major_outage"`
	URL         string `json:"url" binding:"omitempty,url"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"isVisible"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=operational degraded partial_outage major_outage"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}

func (h *ServiceHandler) List(ctx *gin.Context) {
	services, err := h.services.List(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	ctx.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(ctx *gin.Context) {
	var req CreateServiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	service, err := h.services.Create(ctx.Request.Context(), store.CreateServiceParams{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ServiceStatus(req.Status),
		URL:         req.URL,
		Order:       req.Order,
		IsVisible:   isVisible,
	})
	if err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to create service")
		return
	}

	ctx.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}

	service, err := h.services.Get(ctx.Request.Context(), id)
	if err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to fetch service")
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}

	var req UpdateServiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.UpdateServiceParams{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Order:       req.Order,
		IsVisible:   req.IsVisible,
	}
	if req.Status != nil {
		status := models.ServiceStatus(*req.Status)
		params.Status = &status
	}

	service, err := h.services.Update(ctx.Request.Context(), id, params)
	if err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to update service")
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id", "service ID")
	if !ok {
		return
	}

	if err := h.services.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Service not found", "Failed to delete service")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
