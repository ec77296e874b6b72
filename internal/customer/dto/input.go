package dto

type CreateCustomerInput struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,max=128"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

type UpdateCustomerInput struct {
	ID    string `json:"-" validate:"required"`
	Name  string `json:"name" validate:"required,max=128"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}
