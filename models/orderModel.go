package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. Placement only ever assigns Pending or Processing; the rest
// are reachable through the admin status update endpoint.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	PaymentMethodPaystack    = "paystack"
	PaymentMethodFlutterwave = "flutterwave"
	PaymentMethodCOD         = "cod"
)

type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type ShippingInfo struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postalCode"`
	Apartment  string `json:"apartment"`
}

type Order struct {
	gorm.Model
	OrderID        string         `json:"orderId" gorm:"size:16;uniqueIndex"`
	UserID         *uint          `json:"userId,omitempty"`
	Status         string         `json:"status"`
	TotalAmount    float64        `json:"totalAmount"`
	PaymentMethod  string         `json:"paymentMethod"`
	CustomerInfo   CustomerInfo   `json:"customerInfo" gorm:"embedded;embeddedPrefix:customer_"`
	ShippingInfo   ShippingInfo   `json:"shippingInfo" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentDetails datatypes.JSON `json:"paymentDetails,omitempty"`
	Items          []OrderItem    `json:"items" gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"-"`
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderInput is the order placement payload. Schema validation happens
// at bind time; the orchestrator re-checks the parts persistence depends on.
type CreateOrderInput struct {
	TotalAmount    float64          `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod  string           `json:"paymentMethod" binding:"required,oneof=paystack flutterwave cod"`
	CustomerInfo   CustomerInfo     `json:"customerInfo" binding:"required"`
	ShippingInfo   ShippingInfo     `json:"shippingInfo" binding:"required"`
	PaymentDetails datatypes.JSON   `json:"paymentDetails"`
	Items          []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type OrderItemInput struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}
