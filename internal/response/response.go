// Package response writes the JSON envelope every HTTP handler returns and
// maps domain errors onto status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/lock"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeRecipeMissing     = "RECIPE_MISSING"
	CodeBusy              = "BUSY"
	CodeInternal          = "INTERNAL_ERROR"
)

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func SuccessWithTotal(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: &Meta{Total: total}})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Envelope{Error: &ErrorInfo{Code: code, Message: message}})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// StockShortage is the detail body of an insufficient stock response.
type StockShortage struct {
	Ingredient string `json:"ingredient"`
	Required   string `json:"required"`
	Available  string `json:"available"`
	Unit       string `json:"unit"`
}

// HandleError maps err to a status code and writes it. Unknown errors become
// a 500 with a generic message.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var (
		validationErrs validator.ValidationErrors
		stockErr       *inventory.InsufficientStockError
		recipeErr      *sales.RecipeMissingError
	)

	switch {
	case errors.As(err, &validationErrs):
		BadRequest(c, err.Error())
	case errors.As(err, &stockErr):
		c.AbortWithStatusJSON(http.StatusConflict, Envelope{Error: &ErrorInfo{
			Code:    CodeInsufficientStock,
			Message: stockErr.Error(),
			Details: StockShortage{
				Ingredient: stockErr.Ingredient,
				Required:   stockErr.Required.String(),
				Available:  stockErr.Available.String(),
				Unit:       stockErr.Unit,
			},
		}})
	case errors.As(err, &recipeErr), errors.Is(err, inventory.ErrRecipeNotFound):
		Error(c, http.StatusUnprocessableEntity, CodeRecipeMissing, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, inventory.ErrItemNotFound),
		errors.Is(err, customer.ErrCustomerNotFound):
		Error(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, catalog.ErrProductExists), errors.Is(err, customer.ErrCustomerExists):
		Error(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, sales.ErrInvalidInput),
		errors.Is(err, catalog.ErrInvalidMarkup),
		errors.Is(err, catalog.ErrInvalidRecipe),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInvalidItem):
		BadRequest(c, err.Error())
	case errors.Is(err, lock.ErrLockBusy):
		Error(c, http.StatusServiceUnavailable, CodeBusy, err.Error())
	default:
		Error(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	}
}
