package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
	"github.com/biscenic/biscenic-api/services"
)

// OrderPlacer is the placement entrypoint, implemented by services.OrderService.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, input models.CreateOrderInput, userID *uint) (string, error)
}

type OrderController struct {
	db     *gorm.DB
	orders OrderPlacer
	logger *zap.Logger
}

func NewOrderController(db *gorm.DB, orders OrderPlacer, logger *zap.Logger) *OrderController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderController{db: db, orders: orders, logger: logger}
}

// authenticatedUserID pulls the user id out of the JWT claims, if any. Guest
// checkout is allowed, so a missing user is not an error.
func authenticatedUserID(ctx *gin.Context) *uint {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return nil
	}
	uid := uint(id)
	return &uid
}

// CreateOrder places an order through the orchestrator.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var input models.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderId, err := c.orders.PlaceOrder(ctx.Request.Context(), input, authenticatedUserID(ctx))
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order created successfully.",
		"orderId": orderId,
	})
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := c.db.Preload("Items")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_id LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := c.db.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("order_id LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func (c *OrderController) GetOrdersByCustomer(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := c.db.Preload("Items").
		Where("user_id = ?", userId).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		c.logger.Error("failed to fetch customer orders", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	var order models.Order
	result := c.db.Preload("Items").Where("order_id = ?", orderId).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found.")
		} else {
			c.logger.Error("failed to fetch order", zap.Error(result.Error))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId := ctx.Param("orderId")
	result := c.db.Model(&models.Order{}).
		Where("order_id = ?", orderId).
		Update("status", orderStatusData.Status)
	if result.Error != nil {
		c.logger.Error("failed to update order status", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	result := c.db.Where("order_id = ?", orderId).Delete(&models.Order{})
	if result.Error != nil {
		c.logger.Error("failed to delete order", zap.Error(result.Error))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
