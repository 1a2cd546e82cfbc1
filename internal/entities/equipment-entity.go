package entities

import "rental-system/pkg/types"

type Equipment struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	InventoryNumber string  `json:"inventoryNumber"`
	CategoryID      *uint64 `json:"categoryId"`

	types.BaseEntity

	Category *Category `json:"category,omitempty"`
}

// RentedEquipment - единица оборудования внутри заказа вместе с условиями строки заказа.
type RentedEquipment struct {
	Equipment

	LineID    uint64  `json:"lineId"`
	Quantity  int     `json:"quantity"`
	RentPrice float64 `json:"rentPrice"`
}
