package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sanchitsharma1/Bizdash/models"
)

func TestComputeSummaryEmptyState(t *testing.T) {
	reader := NewSummaryReader(newTestDB(t))

	s, err := reader.ComputeSummary(context.Background())
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}

	for name, got := range map[string]decimal.Decimal{
		"totalExpenses":       s.TotalExpenses,
		"totalEarnings":       s.TotalEarnings,
		"netProfit":           s.NetProfit,
		"totalInventoryValue": s.TotalInventoryValue,
	} {
		if !got.IsZero() {
			t.Errorf("%s: expected 0, got %s", name, got)
		}
	}
	if s.MonthlyExpenses == nil || len(s.MonthlyExpenses) != 0 {
		t.Errorf("expected empty monthlyExpenses, got %v", s.MonthlyExpenses)
	}
	if s.MonthlyEarnings == nil || len(s.MonthlyEarnings) != 0 {
		t.Errorf("expected empty monthlyEarnings, got %v", s.MonthlyEarnings)
	}
}

func TestComputeSummaryMonthlyGrouping(t *testing.T) {
	db := newTestDB(t)
	expenses := NewExpenseRepository(db)
	ctx := context.Background()

	for _, row := range []struct{ amount, date string }{
		{"50", "2024-01-15"},
		{"30", "2024-01-20"},
		{"10", "2024-02-01"},
	} {
		if _, err := expenses.Create(ctx, testExpense(t, row.amount, row.date)); err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	s, err := NewSummaryReader(db).ComputeSummary(ctx)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}

	want := []models.MonthlyTotal{
		{Month: "2024-01", Total: decimal.RequireFromString("80")},
		{Month: "2024-02", Total: decimal.RequireFromString("10")},
	}
	if len(s.MonthlyExpenses) != len(want) {
		t.Fatalf("expected %d monthly entries, got %d", len(want), len(s.MonthlyExpenses))
	}
	for i, w := range want {
		got := s.MonthlyExpenses[i]
		if got.Month != w.Month || !got.Total.Equal(w.Total) {
			t.Errorf("entry %d: expected {%s %s}, got {%s %s}", i, w.Month, w.Total, got.Month, got.Total)
		}
	}
	if !s.TotalExpenses.Equal(decimal.RequireFromString("90")) {
		t.Errorf("expected total 90, got %s", s.TotalExpenses)
	}
}

func TestComputeSummaryNetProfit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := NewExpenseRepository(db).Create(ctx, testExpense(t, "40.25", "2024-05-01")); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	d, _ := models.ParseDate("2024-05-03")
	if _, err := NewEarningRepository(db).Create(ctx, models.Earning{
		Description: "product sales",
		Amount:      dec(t, "100"),
		Source:      "store",
		Date:        d,
	}); err != nil {
		t.Fatalf("create earning: %v", err)
	}

	s, err := NewSummaryReader(db).ComputeSummary(ctx)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	if !s.NetProfit.Equal(decimal.RequireFromString("59.75")) {
		t.Errorf("expected net profit 59.75, got %s", s.NetProfit)
	}
}

func TestComputeSummaryInventoryValueExact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	qty := int64(100)
	if _, err := NewInventoryRepository(db).Create(ctx, models.InventoryItem{
		Name:         "widgets",
		Quantity:     &qty,
		CostPrice:    dec(t, "10.50"),
		SellingPrice: dec(t, "15.00"),
	}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	reader := NewSummaryReader(db)
	want := decimal.RequireFromString("1050.00")

	// Repeated recomputation must stay exact; a float pipeline would drift.
	for i := 0; i < 10; i++ {
		s, err := reader.ComputeSummary(ctx)
		if err != nil {
			t.Fatalf("compute summary (round %d): %v", i, err)
		}
		if !s.TotalInventoryValue.Equal(want) {
			t.Fatalf("round %d: expected 1050.00 exactly, got %s", i, s.TotalInventoryValue)
		}
	}
}
