package analytics

import (
	"testing"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

func TestSummarizeEmptyList(t *testing.T) {
	s := Summarize(domain.ShoppingList{PlannedBudgetCents: 50000})
	if s.TotalSpentCents != 0 || s.ItemCount != 0 || s.CheckedCount != 0 {
		t.Fatalf("empty list summary not zero: %+v", s)
	}
	if s.IsOverBudget {
		t.Fatalf("empty list must never be over budget")
	}
	if s.CheckedPercent() != 0 {
		t.Fatalf("CheckedPercent on empty list = %v, want 0", s.CheckedPercent())
	}
}

func TestSummarizeMixedUnits(t *testing.T) {
	// 10.00 x 3 un + 5.00 total for 2 kg = 35.00
	list := domain.ShoppingList{
		Items: []domain.Item{
			{PriceCents: 1000, Quantity: 3, Unit: domain.UnitPiece, Checked: true},
			{PriceCents: 500, Quantity: 2, Unit: domain.UnitKilogram},
		},
	}
	s := Summarize(list)
	if s.TotalSpentCents != 3500 {
		t.Fatalf("TotalSpentCents = %d, want 3500", s.TotalSpentCents)
	}
	if s.CheckedSpentCents != 3000 {
		t.Fatalf("CheckedSpentCents = %d, want 3000", s.CheckedSpentCents)
	}
	if s.ItemCount != 2 || s.CheckedCount != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", s.ItemCount, s.CheckedCount)
	}
	if s.CheckedPercent() != 50 {
		t.Fatalf("CheckedPercent = %v, want 50", s.CheckedPercent())
	}
}

func TestSummarizeOverBudget(t *testing.T) {
	// Budget 100.00, spend 120.00: over by 20.00.
	list := domain.ShoppingList{
		PlannedBudgetCents: 10000,
		Items: []domain.Item{
			{PriceCents: 12000, Quantity: 1, Unit: domain.UnitPiece},
		},
	}
	s := Summarize(list)
	if !s.IsOverBudget {
		t.Fatalf("expected over budget")
	}
	if s.OverageCents != 2000 {
		t.Fatalf("OverageCents = %d, want 2000", s.OverageCents)
	}
	if s.BudgetProgressPercent != 120 {
		t.Fatalf("BudgetProgressPercent = %v, want 120", s.BudgetProgressPercent)
	}
}

func TestSummarizeNoBudgetNoDivision(t *testing.T) {
	list := domain.ShoppingList{
		Items: []domain.Item{{PriceCents: 1000, Quantity: 1, Unit: domain.UnitPiece}},
	}
	s := Summarize(list)
	if s.BudgetProgressPercent != 0 {
		t.Fatalf("BudgetProgressPercent without budget = %v, want 0", s.BudgetProgressPercent)
	}
	if s.IsOverBudget {
		t.Fatalf("no budget must never be over budget")
	}
}

func TestSummarizeWithinBudget(t *testing.T) {
	list := domain.ShoppingList{
		PlannedBudgetCents: 10000,
		Items:              []domain.Item{{PriceCents: 5000, Quantity: 1, Unit: domain.UnitPiece}},
	}
	s := Summarize(list)
	if s.IsOverBudget || s.OverageCents != 0 {
		t.Fatalf("within budget: %+v", s)
	}
	if s.BudgetProgressPercent != 50 {
		t.Fatalf("BudgetProgressPercent = %v, want 50", s.BudgetProgressPercent)
	}
}
