package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
)

var (
	// ErrInvalidOrder rejects a payload that would fail at the write anyway.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrOrderCreationFailed is the single failure callers see for any
	// persistence-path problem. The cause goes to the logs, not the caller.
	ErrOrderCreationFailed = errors.New("order creation failed")
	// ErrDuplicateOrderID marks a uniqueness violation on the generated id.
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// Notifier sends the two post-placement emails. Implemented by EmailService.
type Notifier interface {
	SendCustomerConfirmation(order *models.Order) error
	SendAdminNotification(order *models.Order) error
}

// OrderService owns the placement pipeline: assign identity, derive status,
// persist atomically, then notify without touching the response path.
type OrderService struct {
	store    OrderStore
	notifier Notifier
	logger   *zap.Logger
	newID    func() string
}

func NewOrderService(store OrderStore, notifier Notifier, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		newID:    NewOrderID,
	}
}

// NewOrderID returns a human-readable order code such as ORD-9F3A21BC.
func NewOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func initialStatus(paymentMethod string) string {
	if paymentMethod == models.PaymentMethodCOD {
		return models.OrderStatusPending
	}
	return models.OrderStatusProcessing
}

// PlaceOrder persists the order inside a transaction and, once the commit has
// succeeded, dispatches the confirmation emails in a detached goroutine. The
// returned order id is valid regardless of what happens to the emails.
func (s *OrderService) PlaceOrder(ctx context.Context, input models.CreateOrderInput, userID *uint) (string, error) {
	if err := validateOrderInput(input); err != nil {
		return "", err
	}

	order := &models.Order{
		OrderID:        s.newID(),
		UserID:         userID,
		Status:         initialStatus(input.PaymentMethod),
		TotalAmount:    input.TotalAmount,
		PaymentMethod:  input.PaymentMethod,
		CustomerInfo:   input.CustomerInfo,
		ShippingInfo:   input.ShippingInfo,
		PaymentDetails: input.PaymentDetails,
		Items:          orderItems(input.Items),
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		s.logger.Error("failed to begin order transaction", zap.Error(err))
		return "", ErrOrderCreationFailed
	}
	defer tx.Close()

	if err := tx.Create(order); err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Error("order id collision",
				zap.String("orderId", order.OrderID),
				zap.Error(err))
			return "", errors.Join(ErrOrderCreationFailed, ErrDuplicateOrderID)
		}
		s.logger.Error("failed to create order",
			zap.String("orderId", order.OrderID),
			zap.Error(err))
		return "", ErrOrderCreationFailed
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		s.logger.Error("failed to commit order",
			zap.String("orderId", order.OrderID),
			zap.Error(err))
		return "", ErrOrderCreationFailed
	}

	// The order is durable from here on. Email is a best-effort side channel
	// and must never reach the caller's result.
	go s.dispatchNotifications(order)

	return order.OrderID, nil
}

func (s *OrderService) dispatchNotifications(order *models.Order) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.notifier.SendCustomerConfirmation(order); err != nil {
			s.logger.Warn("customer confirmation email failed",
				zap.String("orderId", order.OrderID),
				zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.notifier.SendAdminNotification(order); err != nil {
			s.logger.Warn("admin notification email failed",
				zap.String("orderId", order.OrderID),
				zap.Error(err))
		}
	}()

	wg.Wait()
}

func validateOrderInput(input models.CreateOrderInput) error {
	switch input.PaymentMethod {
	case models.PaymentMethodPaystack, models.PaymentMethodFlutterwave, models.PaymentMethodCOD:
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidOrder, input.PaymentMethod)
	}
	if input.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", ErrInvalidOrder)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	if input.CustomerInfo.Name == "" || input.CustomerInfo.Email == "" {
		return fmt.Errorf("%w: customer name and email are required", ErrInvalidOrder)
	}
	if input.ShippingInfo.Address == "" || input.ShippingInfo.City == "" {
		return fmt.Errorf("%w: shipping address and city are required", ErrInvalidOrder)
	}
	return nil
}

func orderItems(inputs []models.OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.OrderItem{
			ProductID: in.ID,
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
		})
	}
	return items
}
