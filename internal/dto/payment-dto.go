package dto

import "rental-system/pkg/types"

type CreatePaymentDTO struct {
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	PaymentDate types.Time `json:"paymentDate" validate:"required"`
	PaymentType string     `json:"paymentType" validate:"required,notblank,max=30"`
	OrderID     uint64     `json:"orderId" validate:"required,gt=0"`
}

type UpdatePaymentDTO struct {
	Amount      *float64    `json:"amount" validate:"omitempty,gt=0"`
	PaymentDate *types.Time `json:"paymentDate"`
	PaymentType *string     `json:"paymentType" validate:"omitempty,notblank,max=30"`
	OrderID     *uint64     `json:"orderId" validate:"omitempty,gt=0"`
}
