package dto

import (
	"github.com/aarondl/null/v8"

	"rental-system/pkg/types"
)

type CreateOrderDTO struct {
	DateStart       types.Time  `json:"dateStart" validate:"required"`
	DateEnd         types.Time  `json:"dateEnd" validate:"required"`
	Status          string      `json:"status" validate:"required,notblank,max=30"`
	ClientID        uint64      `json:"clientId" validate:"required,gt=0"`
	PriceCategoryID null.Uint64 `json:"priceCategoryId" validate:"omitempty,gt=0"`

	// Позиции заказа, создаются в той же транзакции
	Items []CreateOrderItemDTO `json:"items" validate:"omitempty,dive"`
}

type CreateOrderItemDTO struct {
	EquipmentID uint64   `json:"equipmentId" validate:"required,gt=0"`
	Quantity    int      `json:"quantity" validate:"required,gt=0"`
	RentPrice   *float64 `json:"rentPrice" validate:"required,gte=0"`
}

type UpdateOrderDTO struct {
	DateStart       *types.Time `json:"dateStart"`
	DateEnd         *types.Time `json:"dateEnd"`
	Status          *string     `json:"status" validate:"omitempty,notblank,max=30"`
	ClientID        *uint64     `json:"clientId" validate:"omitempty,gt=0"`
	PriceCategoryID null.Uint64 `json:"priceCategoryId" validate:"omitempty,gt=0"`
}
