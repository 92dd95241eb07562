package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/gateways"
	"github.com/biscenic/biscenic-api/models"
	"github.com/biscenic/biscenic-api/services"
	"github.com/biscenic/biscenic-api/utils"
)

type PaymentController struct {
	payments    *services.PaymentService
	paystack    *gateways.PaystackClient
	flutterwave *gateways.FlutterwaveClient
	logger      *zap.Logger
}

func NewPaymentController(
	payments *services.PaymentService,
	paystack *gateways.PaystackClient,
	flutterwave *gateways.FlutterwaveClient,
	logger *zap.Logger,
) *PaymentController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentController{
		payments:    payments,
		paystack:    paystack,
		flutterwave: flutterwave,
		logger:      logger,
	}
}

type initiatePaymentInput struct {
	Email    string  `json:"email" binding:"required,email"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	Gateway  string  `json:"gateway"`
	Name     string  `json:"name"`
	Phone    string  `json:"phonenumber"`
}

// InitiatePayment starts a transaction with the selected gateway and returns
// the authorization URL the shopper should be redirected to.
func (c *PaymentController) InitiatePayment(ctx *gin.Context) {
	input := initiatePaymentInput{
		Currency: utils.DefaultCurrency,
		Gateway:  models.PaymentMethodPaystack,
		Name:     "Customer",
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email and amount are required")
		return
	}
	if input.Currency == "" {
		input.Currency = utils.DefaultCurrency
	}
	if input.Gateway == "" {
		input.Gateway = models.PaymentMethodPaystack
	}

	if !utils.IsSupportedCurrency(input.Currency) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unsupported currency: "+input.Currency)
		return
	}

	var (
		result *gateways.InitializeResult
		err    error
	)
	switch strings.ToLower(input.Gateway) {
	case models.PaymentMethodFlutterwave:
		result, err = c.flutterwave.Initialize(ctx.Request.Context(), input.Email, input.Name, input.Phone, input.Amount, input.Currency)
	case models.PaymentMethodPaystack:
		// The frontend already sends the amount in the currency subunit.
		result, err = c.paystack.Initialize(ctx.Request.Context(), input.Email, int64(input.Amount), input.Currency)
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Unsupported payment gateway: "+input.Gateway)
		return
	}
	if err != nil {
		if errors.Is(err, gateways.ErrAmountTooLarge) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid amount.")
			return
		}
		c.logger.Error("payment initialization error", zap.String("gateway", input.Gateway), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to initialize payment")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment initialization successful",
		"data":    result,
	})
}

// VerifyPayment checks a transaction with its gateway and, when a matching
// audit record exists, moves its status accordingly.
func (c *PaymentController) VerifyPayment(ctx *gin.Context) {
	reference := ctx.Query("reference")
	gateway := ctx.DefaultQuery("gateway", models.PaymentMethodPaystack)

	if reference == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Transaction reference is required")
		return
	}

	var (
		result *gateways.VerifyResult
		err    error
	)
	switch strings.ToLower(gateway) {
	case models.PaymentMethodFlutterwave:
		result, err = c.flutterwave.Verify(ctx.Request.Context(), reference)
	case models.PaymentMethodPaystack:
		result, err = c.paystack.Verify(ctx.Request.Context(), reference)
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Unsupported payment gateway: "+gateway)
		return
	}
	if err != nil {
		c.logger.Error("payment verification error", zap.String("gateway", gateway), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	status := models.PaymentStatusFailed
	if result.Successful {
		status = models.PaymentStatusCompleted
	}
	if err := c.payments.UpdatePaymentStatus(ctx.Request.Context(), reference, status); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.logger.Error("failed to update payment status", zap.String("reference", reference), zap.Error(err))
	}

	if result.Successful {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Payment verification successful",
			"data":    result,
		})
		return
	}
	sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
		"message": "Payment verification failed",
		"data":    result,
	})
}

// CreatePayment records a gateway transaction for audit.
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var input services.CreatePaymentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	payment, err := c.payments.CreatePayment(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateReference) {
			sendErrorResponse(ctx, http.StatusConflict, err.Error())
			return
		}
		c.logger.Error("failed to create payment", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

func (c *PaymentController) GetPaymentsByUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	payments, err := c.payments.GetPaymentsByUser(ctx.Request.Context(), uint(userId))
	if err != nil {
		c.logger.Error("failed to fetch payments", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}

func (c *PaymentController) GetPaymentByReference(ctx *gin.Context) {
	reference := ctx.Param("reference")

	payment, err := c.payments.GetPaymentByReference(ctx.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Payment not found")
		} else {
			c.logger.Error("failed to fetch payment", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payment")
		}
		return
	}

	ctx.JSON(http.StatusOK, payment)
}
