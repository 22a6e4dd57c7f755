package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. Quantity and both prices bind through
// pointers: zero is a valid stored value but an omitted field is rejected.
type InventoryItem struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name" binding:"required"`
	Quantity     *int64           `json:"quantity" binding:"required"`
	CostPrice    *decimal.Decimal `json:"cost_price" binding:"required"`
	SellingPrice *decimal.Decimal `json:"selling_price" binding:"required"`
	Supplier     string           `json:"supplier"`
}

func (i InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Quantity == nil {
		return ErrMissingQuantity
	}
	if *i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if i.CostPrice == nil || i.SellingPrice == nil {
		return ErrMissingPrice
	}
	if i.CostPrice.IsNegative() || i.SellingPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
