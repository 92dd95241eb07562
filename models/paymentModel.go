package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is the audit record of a gateway transaction. Amount is stored in
// the currency subunit (kobo, cents) to avoid float rounding.
type Payment struct {
	gorm.Model
	UserID               uint           `json:"userId"`
	OrderID              uint           `json:"orderId"`
	Amount               int64          `json:"amount"`
	Currency             string         `json:"currency"`
	PaymentMethod        string         `json:"paymentMethod"`
	Status               string         `json:"status"`
	TransactionReference string         `json:"transactionReference" gorm:"uniqueIndex;size:191"`
	GatewayResponse      datatypes.JSON `json:"gatewayResponse,omitempty"`
	Order                *Order         `json:"order,omitempty"`
	User                 *User          `json:"user,omitempty"`
}
