package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentCash PaymentMode = "Cash"
	PaymentUPI  PaymentMode = "UPI"
	PaymentCard PaymentMode = "Card"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// Sale is immutable once committed. PriceEach is the unit price at commit time.
type Sale struct {
	ID          string          `db:"id" json:"id"`
	ProductID   string          `db:"product_id" json:"product_id"`
	Quantity    int             `db:"quantity" json:"quantity"`
	PriceEach   decimal.Decimal `db:"price_each" json:"price_each"`
	Total       decimal.Decimal `db:"total" json:"total"`
	PaymentMode PaymentMode     `db:"payment_mode" json:"payment_mode"`
	CustomerID  string          `db:"customer_id" json:"customer_id"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
