// Package handlers implements the HTTP surface. Validation happens here
// at the boundary; lifecycle rules live in the store layer. Persistence
// failures are logged and answered with a generic 500, never leaked.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/statuspad-dev/statuspad/internal/store"
)

// idParam parses a numeric path parameter, answering 400 itself when the
// value is malformed.
func idParam(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label})
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps a store error to the right status code.
func respondStoreError(ctx *gin.Context, err error, notFound, internal string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case store.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg(internal)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": internal})
	}
}
