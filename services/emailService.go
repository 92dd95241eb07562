package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/biscenic/biscenic-api/models"
	"github.com/biscenic/biscenic-api/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Sender is the mail transport, implemented by utils.Mailer.
type Sender interface {
	Send(to, subject, body string) error
}

// EmailService renders and sends the order notification emails.
type EmailService struct {
	sender     Sender
	adminEmail string
	logger     *zap.Logger
}

func NewEmailService(sender Sender, adminEmail string, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{sender: sender, adminEmail: adminEmail, logger: logger}
}

type mailItem struct {
	Name     string
	Quantity int
	Price    string
}

type orderMailData struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	Total         string
	Address       string
	City          string
	PaymentMethod string
	Items         []mailItem
}

func newOrderMailData(order *models.Order) orderMailData {
	items := make([]mailItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, mailItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    utils.FormatCurrency(item.Price, utils.DefaultCurrency),
		})
	}
	return orderMailData{
		OrderID:       order.OrderID,
		CustomerName:  order.CustomerInfo.Name,
		CustomerEmail: order.CustomerInfo.Email,
		Total:         utils.FormatCurrency(order.TotalAmount, utils.DefaultCurrency),
		Address:       order.ShippingInfo.Address,
		City:          order.ShippingInfo.City,
		PaymentMethod: strings.ToUpper(order.PaymentMethod),
		Items:         items,
	}
}

// SendCustomerConfirmation mails the order summary to the customer.
func (s *EmailService) SendCustomerConfirmation(order *models.Order) error {
	body, err := renderMail("order_confirmation.html", newOrderMailData(order))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your Order Confirmation #%s", order.OrderID)
	return s.sender.Send(order.CustomerInfo.Email, subject, body)
}

// SendAdminNotification alerts the store owner about a new order.
func (s *EmailService) SendAdminNotification(order *models.Order) error {
	body, err := renderMail("admin_alert.html", newOrderMailData(order))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("NEW ORDER RECEIVED: #%s", order.OrderID)
	return s.sender.Send(s.adminEmail, subject, body)
}

func renderMail(name string, data orderMailData) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return buf.String(), nil
}
