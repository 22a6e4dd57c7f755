package models

import "github.com/shopspring/decimal"

// SummarySnapshot is the derived dashboard aggregate. It is never persisted;
// the aggregator recomputes it from the three collections on every request.
type SummarySnapshot struct {
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	TotalEarnings       decimal.Decimal `json:"totalEarnings"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	MonthlyExpenses     []MonthlyTotal  `json:"monthlyExpenses"`
	MonthlyEarnings     []MonthlyTotal  `json:"monthlyEarnings"`
}

// MonthlyTotal is one point of a monthly series, keyed "YYYY-MM".
type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
