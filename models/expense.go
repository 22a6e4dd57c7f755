package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded business expense. Amount binds through a
// pointer so a missing field is distinguishable from a legitimate zero.
type Expense struct {
	ID          int64            `json:"id"`
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Date        Date             `json:"date" binding:"required"`
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if e.Amount == nil {
		return ErrMissingAmount
	}
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
