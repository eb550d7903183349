package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"print-order-backend/internal/models"
	"print-order-backend/internal/services"
)

type CleanupHandler struct {
	cleanupService *services.CleanupService
	secret         string
}

// NewCleanupHandler wires the scheduler-facing sweep endpoint. When secret
// is non-empty, callers must present it as a bearer token.
func NewCleanupHandler(cleanupService *services.CleanupService, secret string) *CleanupHandler {
	return &CleanupHandler{
		cleanupService: cleanupService,
		secret:         secret,
	}
}

// Cleanup godoc
// @Summary     Run the expiry sweep
// @Description Deletes every expired stored document and payment proof and
// @Description flags the affected rows. Intended to be invoked by an external
// @Description scheduler, not end users.
// @Tags        cleanup
// @Produce     json
// @Success     200 {object} models.CleanupResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /cleanup [post]
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	if h.secret != "" {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid cleanup secret"})
			return
		}
	}

	result, err := h.cleanupService.Sweep()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "cleanup failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CleanupResponse{
		DeletedFiles:         result.DeletedFiles,
		DeletedPaymentProofs: result.DeletedPaymentProofs,
	})
}
