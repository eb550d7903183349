package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"print-order-backend/internal/lifecycle"
	"print-order-backend/internal/models"
	"print-order-backend/internal/supabase"
)

// Notifier is the change-notification seam; the Supabase realtime client
// satisfies it in production.
type Notifier interface {
	PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error
}

type OrdersHandler struct {
	dbClient       *supabase.DatabaseClient
	realtimeClient Notifier
	policy         lifecycle.Policy
}

func NewOrdersHandler(dbClient *supabase.DatabaseClient, realtimeClient Notifier, policy lifecycle.Policy) *OrdersHandler {
	return &OrdersHandler{
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
		policy:         policy,
	}
}

// ListOrders godoc
// @Summary     List or look up orders
// @Description Returns all orders newest first. With ?id= returns a single order.
// @Description With ?trackingId= returns the restricted public tracking projection.
// @Tags        orders
// @Produce     json
// @Param       id query string false "Order ID (UUID)"
// @Param       trackingId query string false "Order ID (UUID) for public tracking"
// @Success     200 {array} models.OrderResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	if id := c.Query("id"); id != "" {
		order, ok := h.lookupOrder(c, id)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, models.NewOrderResponse(*order))
		return
	}

	if trackingID := c.Query("trackingId"); trackingID != "" {
		order, ok := h.lookupOrder(c, trackingID)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, models.NewTrackingResponse(*order))
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

	responses := make([]models.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = models.NewOrderResponse(o)
	}

	c.JSON(http.StatusOK, responses)
}

// CreateOrder godoc
// @Summary     Create a print order
// @Description Creates a new order in pending status. The estimated time is
// @Description computed from copies and color mode and never changes afterwards.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order fields"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	mode := models.ColorMode(req.ColorMode)
	order := &models.Order{
		ID:               uuid.New(),
		CustomerName:     req.CustomerName,
		Contact:          req.Contact,
		FileName:         req.FileName,
		FileURL:          nullString(req.FileURL),
		FilePath:         nullString(req.FilePath),
		PaymentProofURL:  nullString(req.PaymentProofURL),
		PaymentProofPath: nullString(req.PaymentProofPath),
		ColorMode:        mode,
		Copies:           req.Copies,
		Pages:            req.Pages,
		PaperSize:        req.PaperSize,
		Status:           lifecycle.StatusPending,
		EstimatedTime:    models.EstimateMinutes(req.Copies, mode),
	}
	if req.Notes != "" {
		order.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	created, err := h.dbClient.CreateOrder(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create order",
			Message: err.Error(),
		})
		return
	}

	h.realtimeClient.PublishOrderEvent(created.ID, "order_created",
		supabase.OrderCreatedPayload(created.ID, string(created.Status)))

	c.JSON(http.StatusCreated, models.NewOrderResponse(*created))
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Moves an order along pending -> printing -> completed -> delivered,
// @Description or cancels it from any non-terminal status. Reaching delivered or
// @Description cancelled schedules deletion of the stored document and payment
// @Description proof after their configured retention windows.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateOrderStatusRequest true "Order ID and target status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [patch]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing id or status",
			Message: err.Error(),
		})
		return
	}

	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orderID, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.dbClient.GetOrder(orderID)
	if errors.Is(err, supabase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return
	}

	fx, err := lifecycle.Apply(order.Status, lifecycle.Status(req.Status), time.Now(), h.policy)
	if errors.Is(err, lifecycle.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "invalid transition",
			Message: "cannot move order from " + string(order.Status) + " to " + req.Status,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to apply transition",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.dbClient.UpdateOrderStatus(orderID, fx)
	if errors.Is(err, supabase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update order",
			Message: err.Error(),
		})
		return
	}

	h.realtimeClient.PublishOrderEvent(updated.ID, "status_changed",
		supabase.StatusChangedPayload(updated.ID, string(updated.Status)))

	c.JSON(http.StatusOK, models.NewOrderResponse(*updated))
}

func (h *OrdersHandler) lookupOrder(c *gin.Context, id string) (*models.Order, bool) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return nil, false
	}

	order, err := h.dbClient.GetOrder(orderID)
	if errors.Is(err, supabase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return nil, false
	}
	return order, true
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
