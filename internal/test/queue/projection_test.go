package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"print-order-backend/internal/lifecycle"
	"print-order-backend/internal/models"
	"print-order-backend/internal/queue"
)

func order(status lifecycle.Status, minutes int) models.Order {
	return models.Order{Status: status, EstimatedTime: minutes}
}

func TestProject_CountsPendingAndPrinting(t *testing.T) {
	orders := []models.Order{
		order(lifecycle.StatusPending, 4),
		order(lifecycle.StatusPrinting, 6),
		order(lifecycle.StatusCompleted, 10),
		order(lifecycle.StatusDelivered, 2),
		order(lifecycle.StatusCancelled, 8),
		order(lifecycle.StatusPending, 3),
	}

	info := queue.Project(orders)

	assert.Equal(t, 3, info.Count)
	assert.Equal(t, 13, info.EstimatedTime)
}

func TestProject_EmptyQueue(t *testing.T) {
	info := queue.Project(nil)

	assert.Equal(t, 0, info.Count)
	assert.Equal(t, 0, info.EstimatedTime)
}

func TestProject_OnlyFinishedOrders(t *testing.T) {
	orders := []models.Order{
		order(lifecycle.StatusDelivered, 5),
		order(lifecycle.StatusCancelled, 7),
	}

	info := queue.Project(orders)

	assert.Equal(t, 0, info.Count)
	assert.Equal(t, 0, info.EstimatedTime)
}
