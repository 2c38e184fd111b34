package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/store"
)

type DatabaseHandler struct {
	admin *store.AdminStore
}

func NewDatabaseHandler(admin *store.AdminStore) *DatabaseHandler {
	return &DatabaseHandler{admin: admin}
}

type DatabaseActionRequest struct {
	Action string          `json:"action" binding:"required,oneof=export import reset"`
	Data   *store.Snapshot `json:"data"`
}

// Status reports connectivity and per-table row counts.
func (h *DatabaseHandler) Status(ctx *gin.Context) {
	stats, err := h.admin.Stats(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("database status check failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status": "disconnected",
			"error":  "Database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "connected",
		"statistics": stats,
	})
}

// Action dispatches the export/import/reset maintenance operations.
func (h *DatabaseHandler) Action(ctx *gin.Context) {
	var req DatabaseActionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Action {
	case "export":
		snapshot, err := h.admin.Export(ctx.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("database export failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
			return
		}

		filename := fmt.Sprintf("status-page-export-%s.json", time.Now().UTC().Format("2006-01-02"))
		ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		ctx.JSON(http.StatusOK, snapshot)

	case "import":
		if req.Data == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import data format"})
			return
		}

		result, err := h.admin.Import(ctx.Request.Context(), req.Data)
		if err != nil {
			log.Error().Err(err).Msg("database import failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Data imported successfully",
			"result":  result,
		})

	case "reset":
		if err := h.admin.Reset(ctx.Request.Context()); err != nil {
			log.Error().Err(err).Msg("database reset failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "All data has been reset",
		})
	}
}
