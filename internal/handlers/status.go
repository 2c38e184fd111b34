package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/status"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type StatusHandler struct {
	services *store.ServiceStore
}

func NewStatusHandler(services *store.ServiceStore) *StatusHandler {
	return &StatusHandler{services: services}
}

// Overview serves the public banner: the aggregated status over all
// visible services, recomputed on every request.
func (h *StatusHandler) Overview(ctx *gin.Context) {
	services, err := h.services.ListVisible(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load services for status overview")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status"})
		return
	}

	overall, message := status.Overall(services)

	ctx.JSON(http.StatusOK, gin.H{
		"status":   overall,
		"message":  message,
		"services": services,
	})
}
