package entities

import (
	"time"

	"rental-system/pkg/types"
)

type PriceCategory struct {
	ID        uint64    `json:"id"`
	DateStart time.Time `json:"dateStart"`
	DateEnd   time.Time `json:"dateEnd"`

	types.BaseEntity

	Orders []Order `json:"orders,omitempty"`
}
