package model

import (
	"github.com/shopspring/decimal"
)

// CartItem represents a single cart line: a product reference, the unit
// price at the time it was added, and a positive quantity.
type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
