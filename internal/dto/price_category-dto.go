package dto

import "rental-system/pkg/types"

type CreatePriceCategoryDTO struct {
	DateStart types.Time `json:"dateStart" validate:"required"`
	DateEnd   types.Time `json:"dateEnd" validate:"required"`
}

type UpdatePriceCategoryDTO struct {
	DateStart *types.Time `json:"dateStart"`
	DateEnd   *types.Time `json:"dateEnd"`
}
