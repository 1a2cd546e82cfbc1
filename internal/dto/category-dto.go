package dto

import "github.com/aarondl/null/v8"

type CreateCategoryDTO struct {
	Name           string      `json:"name" validate:"required,notblank,max=50"`
	BaseCategoryID null.Uint64 `json:"baseCategoryId" validate:"omitempty,gt=0"`
}

type UpdateCategoryDTO struct {
	Name           *string     `json:"name" validate:"omitempty,notblank,max=50"`
	BaseCategoryID null.Uint64 `json:"baseCategoryId" validate:"omitempty,gt=0"`
}
