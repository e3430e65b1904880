package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the failure envelope.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	default:
		logger.Error("Failed "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail(err.Error()))
	}
}
