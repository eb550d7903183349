package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"print-order-backend/internal/handlers"
	"print-order-backend/internal/lifecycle"
)

type noopNotifier struct{}

func (noopNotifier) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	return nil
}

func ordersRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewOrdersHandler(nil, noopNotifier{}, lifecycle.Policy{})
	router.POST("/orders", handler.CreateOrder)
	router.PATCH("/orders", handler.UpdateStatus)
	return router
}

func postJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_MissingRequiredFields(t *testing.T) {
	router := ordersRouter()

	w := postJSON(router, "POST", "/orders", `{"customer_name": "Ahmad"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
}

func TestCreateOrder_InvalidColorMode(t *testing.T) {
	router := ordersRouter()

	w := postJSON(router, "POST", "/orders", `{
		"customer_name": "Ahmad",
		"contact": "081234567890",
		"file_name": "laporan.pdf",
		"color_mode": "sepia",
		"copies": 2,
		"pages": 10,
		"paper_size": "A4"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_ZeroCopies(t *testing.T) {
	router := ordersRouter()

	w := postJSON(router, "POST", "/orders", `{
		"customer_name": "Ahmad",
		"contact": "081234567890",
		"file_name": "laporan.pdf",
		"color_mode": "bw",
		"copies": 0,
		"pages": 10,
		"paper_size": "A4"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_MissingFields(t *testing.T) {
	router := ordersRouter()

	w := postJSON(router, "PATCH", "/orders", `{"id": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing id or status")
}
