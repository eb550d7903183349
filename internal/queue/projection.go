// Package queue derives the public queue widget numbers from live order
// state. Nothing here is persisted; callers recompute on every read.
package queue

import (
	"print-order-backend/internal/lifecycle"
	"print-order-backend/internal/models"
)

type Info struct {
	Count         int
	EstimatedTime int
}

// Project counts the orders still occupying the printer (pending or
// printing) and sums their estimated minutes.
func Project(orders []models.Order) Info {
	var info Info
	for _, o := range orders {
		if o.Status == lifecycle.StatusPending || o.Status == lifecycle.StatusPrinting {
			info.Count++
			info.EstimatedTime += o.EstimatedTime
		}
	}
	return info
}
