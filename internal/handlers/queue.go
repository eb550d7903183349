package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"print-order-backend/internal/models"
	"print-order-backend/internal/queue"
	"print-order-backend/internal/supabase"
)

type QueueHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewQueueHandler(dbClient *supabase.DatabaseClient) *QueueHandler {
	return &QueueHandler{
		dbClient: dbClient,
	}
}

// GetQueue godoc
// @Summary     Queue status
// @Description Returns how many documents are currently queued (pending or
// @Description printing) and the total estimated minutes. Recomputed on every read.
// @Tags        queue
// @Produce     json
// @Success     200 {object} models.QueueResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /queue [get]
func (h *QueueHandler) GetQueue(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orders, err := h.dbClient.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list orders",
			Message: err.Error(),
		})
		return
	}

	info := queue.Project(orders)
	c.JSON(http.StatusOK, models.QueueResponse{
		Count:         info.Count,
		EstimatedTime: info.EstimatedTime,
	})
}
