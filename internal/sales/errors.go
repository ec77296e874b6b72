package sales

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid sale request")

// RecipeMissingError rejects a sale for a product that has nothing to assemble.
// It is not a system fault and nothing is mutated.
type RecipeMissingError struct {
	ProductID string
}

func (e *RecipeMissingError) Error() string {
	return fmt.Sprintf("product %s has no recipe", e.ProductID)
}
