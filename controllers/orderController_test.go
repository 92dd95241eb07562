package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biscenic/biscenic-api/middlewares"
	"github.com/biscenic/biscenic-api/models"
	"github.com/biscenic/biscenic-api/services"
)

type fakePlacer struct {
	err       error
	lastInput models.CreateOrderInput
	lastUser  *uint
}

func (p *fakePlacer) PlaceOrder(ctx context.Context, input models.CreateOrderInput, userID *uint) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.lastInput = input
	p.lastUser = userID
	return "ORD-9F3A21BC", nil
}

func newOrderRouter(placer *fakePlacer, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewOrderController(nil, placer, nil)
	router.POST("/api/orders", middlewares.OptionalAuth(jwtSecret), controller.CreateOrder)
	return router
}

func orderPayload() map[string]any {
	return map[string]any{
		"totalAmount":   15000,
		"paymentMethod": "paystack",
		"customerInfo": map[string]any{
			"name":  "Ada Obi",
			"email": "ada@example.com",
			"phone": "+2348012345678",
		},
		"shippingInfo": map[string]any{
			"address": "12 Marina Road",
			"city":    "Lagos",
			"country": "NG",
		},
		"items": []map[string]any{
			{"id": "prod-1", "name": "Velvet Chair", "price": 15000, "quantity": 1},
		},
	}
}

func postOrder(router *gin.Engine, payload map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func signTestToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"name":  "Ada Obi",
		"email": "ada@example.com",
		"role":  "customer",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestCreateOrderGuest(t *testing.T) {
	placer := &fakePlacer{}
	router := newOrderRouter(placer, "test-secret")

	recorder := postOrder(router, orderPayload(), nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Order created successfully.", response["message"])
	assert.Equal(t, "ORD-9F3A21BC", response["orderId"])

	assert.Nil(t, placer.lastUser, "guest checkout must not attach a user id")
	assert.Equal(t, "paystack", placer.lastInput.PaymentMethod)
}

func TestCreateOrderAuthenticated(t *testing.T) {
	placer := &fakePlacer{}
	router := newOrderRouter(placer, "test-secret")

	token := signTestToken(t, "test-secret", 42)
	recorder := postOrder(router, orderPayload(), map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, placer.lastUser)
	assert.Equal(t, uint(42), *placer.lastUser)
}

func TestCreateOrderInvalidInputReturnsBadRequest(t *testing.T) {
	placer := &fakePlacer{err: fmt.Errorf("%w: unsupported payment method", services.ErrInvalidOrder)}
	router := newOrderRouter(placer, "test-secret")

	recorder := postOrder(router, orderPayload(), nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "unsupported payment method")
}

func TestCreateOrderServiceFailureReturnsServerError(t *testing.T) {
	placer := &fakePlacer{err: errors.New("database down")}
	router := newOrderRouter(placer, "test-secret")

	recorder := postOrder(router, orderPayload(), nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to create order.")
	assert.NotContains(t, recorder.Body.String(), "database down", "internal details must not leak")
}

func TestCreateOrderMalformedBody(t *testing.T) {
	placer := &fakePlacer{}
	router := newOrderRouter(placer, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
