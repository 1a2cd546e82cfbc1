package dto

type CreateClientDTO struct {
	FullName string `json:"fullName" validate:"required,notblank,max=50"`
	Phone    string `json:"phone" validate:"required,phone"`
}

type UpdateClientDTO struct {
	FullName *string `json:"fullName" validate:"omitempty,notblank,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
}
