package entities

import "rental-system/pkg/types"

// OrderEquipment - строка заказа: сколько единиц оборудования и по какой цене.
type OrderEquipment struct {
	ID          uint64  `json:"id"`
	Quantity    int     `json:"quantity"`
	RentPrice   float64 `json:"rentPrice"`
	OrderID     uint64  `json:"orderId"`
	EquipmentID uint64  `json:"equipmentId"`

	types.BaseEntity

	Order     *Order     `json:"order,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}
