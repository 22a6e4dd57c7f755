package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sanchitsharma1/Bizdash/models"
)

// SummaryReader computes the derived dashboard snapshot. Nothing is cached;
// every call reads the current committed state.
type SummaryReader struct {
	db *sql.DB
}

func NewSummaryReader(db *sql.DB) *SummaryReader {
	return &SummaryReader{db: db}
}

// ComputeSummary reads all three tables inside one transaction so the
// snapshot reflects a single committed state even while writes interleave.
// Sums are accumulated with decimal in Go; SQLite's SUM over the TEXT
// amount columns would degrade to binary floats.
func (s *SummaryReader) ComputeSummary(ctx context.Context) (models.SummarySnapshot, error) {
	var snapshot models.SummarySnapshot

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return snapshot, fmt.Errorf("begin summary transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot.TotalExpenses, snapshot.MonthlyExpenses, err = sumByMonth(ctx, tx, "expenses")
	if err != nil {
		return snapshot, err
	}
	snapshot.TotalEarnings, snapshot.MonthlyEarnings, err = sumByMonth(ctx, tx, "earnings")
	if err != nil {
		return snapshot, err
	}
	snapshot.NetProfit = snapshot.TotalEarnings.Sub(snapshot.TotalExpenses)

	snapshot.TotalInventoryValue, err = inventoryValue(ctx, tx)
	if err != nil {
		return snapshot, err
	}

	if err := tx.Commit(); err != nil {
		return snapshot, fmt.Errorf("commit summary transaction: %w", err)
	}
	return snapshot, nil
}

// sumByMonth returns the table's grand total and its ascending monthly
// series. Rows arrive ordered by month key, so adjacent rows with the same
// key collapse into one series entry.
func sumByMonth(ctx context.Context, tx *sql.Tx, table string) (decimal.Decimal, []models.MonthlyTotal, error) {
	query := fmt.Sprintf(
		"SELECT strftime('%%Y-%%m', date) AS month, amount FROM %s ORDER BY month ASC", table)

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("sum %s by month: %w", table, err)
	}
	defer rows.Close()

	total := decimal.Zero
	series := make([]models.MonthlyTotal, 0)
	for rows.Next() {
		var month string
		var amount decimal.Decimal
		if err := rows.Scan(&month, &amount); err != nil {
			return decimal.Zero, nil, fmt.Errorf("scan %s month row: %w", table, err)
		}

		total = total.Add(amount)
		if n := len(series); n > 0 && series[n-1].Month == month {
			series[n-1].Total = series[n-1].Total.Add(amount)
		} else {
			series = append(series, models.MonthlyTotal{Month: month, Total: amount})
		}
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, nil, fmt.Errorf("iterate %s month rows: %w", table, err)
	}
	return total, series, nil
}

func inventoryValue(ctx context.Context, tx *sql.Tx) (decimal.Decimal, error) {
	rows, err := tx.QueryContext(ctx, "SELECT quantity, cost_price FROM inventory")
	if err != nil {
		return decimal.Zero, fmt.Errorf("read inventory value: %w", err)
	}
	defer rows.Close()

	value := decimal.Zero
	for rows.Next() {
		var quantity int64
		var costPrice decimal.Decimal
		if err := rows.Scan(&quantity, &costPrice); err != nil {
			return decimal.Zero, fmt.Errorf("scan inventory row: %w", err)
		}
		value = value.Add(costPrice.Mul(decimal.NewFromInt(quantity)))
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("iterate inventory rows: %w", err)
	}
	return value, nil
}
