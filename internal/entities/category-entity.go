package entities

import "rental-system/pkg/types"

type Category struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	BaseCategoryID *uint64 `json:"baseCategoryId"`

	types.BaseEntity

	// Связанные данные (не колонки)
	ParentCategory *Category  `json:"parentCategory,omitempty"`
	Subcategories  []Category `json:"subcategories,omitempty"`
}
