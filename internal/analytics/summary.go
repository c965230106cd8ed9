package analytics

import (
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

// ListSummary is the derived view of one shopping list's spend.
type ListSummary struct {
	TotalSpentCents   int64
	CheckedSpentCents int64
	ItemCount         int
	CheckedCount      int
	// BudgetProgressPercent is TotalSpent/PlannedBudget*100, 0 when no
	// budget is set.
	BudgetProgressPercent float64
	IsOverBudget          bool
	// OverageCents is how far over budget the list is; 0 when within budget.
	OverageCents int64
}

// Summarize computes the full summary for a list. An empty item collection
// yields all zeros, and a zero planned budget never divides.
func Summarize(list domain.ShoppingList) ListSummary {
	var s ListSummary
	for _, it := range list.Items {
		total := LineTotal(it)
		s.TotalSpentCents += total
		s.ItemCount++
		if it.Checked {
			s.CheckedSpentCents += total
			s.CheckedCount++
		}
	}
	budget := list.PlannedBudgetCents
	if budget > 0 {
		s.BudgetProgressPercent = float64(s.TotalSpentCents) / float64(budget) * 100
		if s.TotalSpentCents > budget {
			s.IsOverBudget = true
			s.OverageCents = s.TotalSpentCents - budget
		}
	}
	return s
}

// CheckedPercent returns the share of items already checked, 0 for an empty list.
func (s ListSummary) CheckedPercent() float64 {
	if s.ItemCount == 0 {
		return 0
	}
	return float64(s.CheckedCount) / float64(s.ItemCount) * 100
}
