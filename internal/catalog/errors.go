package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidMarkup   = errors.New("markup must be zero or greater")
	ErrInvalidRecipe   = errors.New("recipe ingredients need a name and a positive quantity")
)
