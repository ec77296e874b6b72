package dto

import "github.com/fekuna/omnipos-juicebar-service/internal/model"

type CommitSaleInput struct {
	ProductID   string            `json:"product_id" binding:"required"`
	Quantity    int               `json:"quantity"`
	PaymentMode model.PaymentMode `json:"payment_mode"`
	CustomerID  string            `json:"customer_id"`
}

type CartLine struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CheckoutInput struct {
	Lines       []CartLine        `json:"lines" binding:"required,min=1,dive"`
	PaymentMode model.PaymentMode `json:"payment_mode"`
	CustomerID  string            `json:"customer_id"`
}

type CheckoutLineResult struct {
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Sale      *model.Sale `json:"sale,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type CheckoutResult struct {
	Lines     []CheckoutLineResult `json:"lines"`
	Committed int                  `json:"committed"`
	Rejected  int                  `json:"rejected"`
}
