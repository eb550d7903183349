package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"print-order-backend/internal/models"
	"print-order-backend/internal/services"
	"print-order-backend/internal/supabase"
)

type FilesHandler struct {
	cleanupService *services.CleanupService
	realtimeClient Notifier
}

func NewFilesHandler(cleanupService *services.CleanupService, realtimeClient Notifier) *FilesHandler {
	return &FilesHandler{
		cleanupService: cleanupService,
		realtimeClient: realtimeClient,
	}
}

// DeleteFile godoc
// @Summary     Purge a stored artifact
// @Description Deletes an order's stored document (or payment proof when
// @Description type=payment_proof) from storage and flags the row. The row is
// @Description left untouched when the storage delete fails.
// @Tags        files
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.DeleteFileRequest true "Order ID and artifact type"
// @Success     200 {object} models.DeleteFileResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /delete-file [post]
func (h *FilesHandler) DeleteFile(c *gin.Context) {
	var req models.DeleteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing id",
			Message: err.Error(),
		})
		return
	}

	orderID, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	kind := models.ArtifactFile
	if req.Type == string(models.ArtifactPaymentProof) {
		kind = models.ArtifactPaymentProof
	}

	err = h.cleanupService.Purge(orderID, kind)
	switch {
	case errors.Is(err, supabase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	case errors.Is(err, services.ErrNoArtifact):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file to delete"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to remove file",
			Message: err.Error(),
		})
		return
	}

	h.realtimeClient.PublishOrderEvent(orderID, "artifact_deleted",
		supabase.ArtifactDeletedPayload(orderID, string(kind)))

	c.JSON(http.StatusOK, models.DeleteFileResponse{Deleted: true})
}
