package entities

import (
	"time"

	"rental-system/pkg/types"
)

type Order struct {
	ID              uint64    `json:"id"`
	DateStart       time.Time `json:"dateStart"`
	DateEnd         time.Time `json:"dateEnd"`
	Status          string    `json:"status"`
	ClientID        uint64    `json:"clientId"`
	PriceCategoryID *uint64   `json:"priceCategoryId"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	Client        *Client           `json:"client,omitempty"`
	PriceCategory *PriceCategory    `json:"priceCategory,omitempty"`
	Equipment     []RentedEquipment `json:"equipment,omitempty"`
	Payments      []Payment         `json:"payments,omitempty"`
}
