package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidItem       = errors.New("inventory quantities and cost must not be negative")
	ErrRecipeNotFound    = errors.New("product has no recipe")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the first ingredient that cannot cover a request.
// Available is zero when the ingredient's inventory item does not exist.
type InsufficientStockError struct {
	Ingredient string
	Required   decimal.Decimal
	Available  decimal.Decimal
	Unit       string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Required: %s %s, available: %s",
		e.Ingredient, e.Required.String(), e.Unit, e.Available.String())
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
