package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"
	"hrm-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the error envelope. Unknown
// errors are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: clientMessage(err, services.ErrNotFound, "Not found")})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: clientMessage(err, services.ErrConflict, "Conflict")})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: clientMessage(err, services.ErrForbidden, "Forbidden")})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

// clientMessage extracts the text a service attached after "<sentinel>: ".
func clientMessage(err, sentinel error, fallback string) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
		return msg[len(prefix):]
	}
	return fallback
}

func respondValidation(c *gin.Context, err error) {
	details := validation.Fields(err)
	if details == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: details})
}
