package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
)

var ErrDuplicateReference = errors.New("transaction reference already exists")

// PaymentService keeps the audit trail of gateway transactions.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type CreatePaymentInput struct {
	UserID               uint           `json:"userId" binding:"required"`
	OrderID              uint           `json:"orderId" binding:"required"`
	Amount               int64          `json:"amount" binding:"required,gt=0"`
	Currency             string         `json:"currency"`
	PaymentMethod        string         `json:"paymentMethod" binding:"required,oneof=paystack flutterwave"`
	TransactionReference string         `json:"transactionReference" binding:"required"`
	GatewayResponse      datatypes.JSON `json:"gatewayResponse"`
}

func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	currency := input.Currency
	if currency == "" {
		currency = "NGN"
	}

	payment := &models.Payment{
		UserID:               input.UserID,
		OrderID:              input.OrderID,
		Amount:               input.Amount,
		Currency:             currency,
		PaymentMethod:        input.PaymentMethod,
		Status:               models.PaymentStatusPending,
		TransactionReference: input.TransactionReference,
		GatewayResponse:      input.GatewayResponse,
	}

	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).
		Preload("Order").
		Preload("User").
		Where("transaction_reference = ?", reference).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) GetPaymentsByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Preload("Order").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}

func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, reference, status string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("transaction_reference = ?", reference).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
