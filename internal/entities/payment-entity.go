package entities

import (
	"time"

	"rental-system/pkg/types"
)

type Payment struct {
	ID          uint64    `json:"id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
	PaymentType string    `json:"paymentType"`
	OrderID     uint64    `json:"orderId"`

	types.BaseEntity

	Order *Order `json:"order,omitempty"`
}
