package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name            string      `json:"name" validate:"required,notblank,max=50"`
	InventoryNumber string      `json:"inventoryNumber" validate:"required,notblank,max=40"`
	CategoryID      null.Uint64 `json:"categoryId" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name            *string     `json:"name" validate:"omitempty,notblank,max=50"`
	InventoryNumber *string     `json:"inventoryNumber" validate:"omitempty,notblank,max=40"`
	CategoryID      null.Uint64 `json:"categoryId" validate:"omitempty,gt=0"`
}
