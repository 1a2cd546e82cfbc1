package dto

type CreateOrderEquipmentDTO struct {
	Quantity    int      `json:"quantity" validate:"required,gt=0"`
	RentPrice   *float64 `json:"rentPrice" validate:"required,gte=0"`
	OrderID     uint64   `json:"orderId" validate:"required,gt=0"`
	EquipmentID uint64   `json:"equipmentId" validate:"required,gt=0"`
}

type UpdateOrderEquipmentDTO struct {
	Quantity    *int     `json:"quantity" validate:"omitempty,gt=0"`
	RentPrice   *float64 `json:"rentPrice" validate:"omitempty,gte=0"`
	OrderID     *uint64  `json:"orderId" validate:"omitempty,gt=0"`
	EquipmentID *uint64  `json:"equipmentId" validate:"omitempty,gt=0"`
}
