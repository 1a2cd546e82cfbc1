package entities

import "rental-system/pkg/types"

type Client struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`

	types.BaseEntity

	Orders []Order `json:"orders,omitempty"`
}
