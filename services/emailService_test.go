package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biscenic/biscenic-api/models"
)

type capturedMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	sent []capturedMail
	err  error
}

func (s *fakeSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, capturedMail{to: to, subject: subject, body: body})
	return nil
}

func testOrder() *models.Order {
	return &models.Order{
		OrderID:       "ORD-9F3A21BC",
		Status:        models.OrderStatusProcessing,
		TotalAmount:   15000,
		PaymentMethod: models.PaymentMethodPaystack,
		CustomerInfo: models.CustomerInfo{
			Name:  "Ada Obi",
			Email: "ada@example.com",
		},
		ShippingInfo: models.ShippingInfo{
			Address: "12 Marina Road",
			City:    "Lagos",
			Country: "NG",
		},
		Items: []models.OrderItem{
			{ProductID: "prod-1", Name: "Velvet Chair", Price: 15000, Quantity: 1},
		},
	}
}

func TestSendCustomerConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailService(sender, "admin@biscenic.com", nil)

	require.NoError(t, svc.SendCustomerConfirmation(testOrder()))
	require.Len(t, sender.sent, 1)

	mail := sender.sent[0]
	assert.Equal(t, "ada@example.com", mail.to)
	assert.Equal(t, "Your Order Confirmation #ORD-9F3A21BC", mail.subject)
	assert.Contains(t, mail.body, "ORD-9F3A21BC")
	assert.Contains(t, mail.body, "Ada Obi")
	assert.Contains(t, mail.body, "12 Marina Road")
	assert.Contains(t, mail.body, "Velvet Chair")
	assert.Contains(t, mail.body, "₦15,000.00")
}

func TestSendAdminNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailService(sender, "admin@biscenic.com", nil)

	require.NoError(t, svc.SendAdminNotification(testOrder()))
	require.Len(t, sender.sent, 1)

	mail := sender.sent[0]
	assert.Equal(t, "admin@biscenic.com", mail.to)
	assert.Equal(t, "NEW ORDER RECEIVED: #ORD-9F3A21BC", mail.subject)
	assert.Contains(t, mail.body, "PAYSTACK")
	assert.Contains(t, mail.body, "ada@example.com")
}

func TestSendFailurePropagatesToDispatcher(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	svc := NewEmailService(sender, "admin@biscenic.com", nil)

	assert.Error(t, svc.SendCustomerConfirmation(testOrder()))
	assert.Error(t, svc.SendAdminNotification(testOrder()))
}
