package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Earning mirrors Expense with a revenue source instead of a category.
type Earning struct {
	ID          int64            `json:"id"`
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Source      string           `json:"source" binding:"required"`
	Date        Date             `json:"date" binding:"required"`
}

func (e Earning) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if e.Amount == nil {
		return ErrMissingAmount
	}
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Source) == "" {
		return ErrEmptySource
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
