package repository

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/sanchitsharma1/Bizdash/models"
)

// NewExpenseRepository maps expenses onto the expenses table, newest first.
func NewExpenseRepository(db *sql.DB) *Repository[models.Expense] {
	return New(db, Mapper[models.Expense]{
		Table:        "expenses",
		Columns:      []string{"description", "amount", "category", "date"},
		DefaultOrder: "date DESC, id DESC",
		Bind: func(e models.Expense) []any {
			return []any{e.Description, e.Amount.String(), e.Category, e.Date}
		},
		Scan: func(row RowScanner) (models.Expense, error) {
			var e models.Expense
			var amount decimal.Decimal
			if err := row.Scan(&e.ID, &e.Description, &amount, &e.Category, &e.Date); err != nil {
				return models.Expense{}, err
			}
			e.Amount = &amount
			return e, nil
		},
		SetID: func(e *models.Expense, id int64) { e.ID = id },
	})
}

// NewEarningRepository maps earnings onto the earnings table, newest first.
func NewEarningRepository(db *sql.DB) *Repository[models.Earning] {
	return New(db, Mapper[models.Earning]{
		Table:        "earnings",
		Columns:      []string{"description", "amount", "source", "date"},
		DefaultOrder: "date DESC, id DESC",
		Bind: func(e models.Earning) []any {
			return []any{e.Description, e.Amount.String(), e.Source, e.Date}
		},
		Scan: func(row RowScanner) (models.Earning, error) {
			var e models.Earning
			var amount decimal.Decimal
			if err := row.Scan(&e.ID, &e.Description, &amount, &e.Source, &e.Date); err != nil {
				return models.Earning{}, err
			}
			e.Amount = &amount
			return e, nil
		},
		SetID: func(e *models.Earning, id int64) { e.ID = id },
	})
}

// NewInventoryRepository maps items onto the inventory table, by name.
func NewInventoryRepository(db *sql.DB) *Repository[models.InventoryItem] {
	return New(db, Mapper[models.InventoryItem]{
		Table:        "inventory",
		Columns:      []string{"name", "quantity", "cost_price", "selling_price", "supplier"},
		DefaultOrder: "name ASC, id ASC",
		Bind: func(i models.InventoryItem) []any {
			return []any{i.Name, *i.Quantity, i.CostPrice.String(), i.SellingPrice.String(), i.Supplier}
		},
		Scan: func(row RowScanner) (models.InventoryItem, error) {
			var i models.InventoryItem
			var quantity int64
			var cost, selling decimal.Decimal
			var supplier sql.NullString
			if err := row.Scan(&i.ID, &i.Name, &quantity, &cost, &selling, &supplier); err != nil {
				return models.InventoryItem{}, err
			}
			i.Quantity = &quantity
			i.CostPrice = &cost
			i.SellingPrice = &selling
			i.Supplier = supplier.String
			return i, nil
		},
		SetID: func(i *models.InventoryItem, id int64) { i.ID = id },
	})
}
