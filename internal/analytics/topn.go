package analytics

import (
	"sort"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

// RankedItem is an item with its precomputed line total.
type RankedItem struct {
	Item       domain.Item
	TotalCents int64
}

// TopByCost ranks items by line total, descending, and returns at most n.
// Ties keep input order (stable sort, no further tie-break).
func TopByCost(items []domain.Item, n int) []RankedItem {
	ranked := make([]RankedItem, 0, len(items))
	for _, it := range items {
		ranked = append(ranked, RankedItem{Item: it, TotalCents: LineTotal(it)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalCents > ranked[j].TotalCents })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopRecurringSoonest suggests recurring items to re-add: only items flagged
// recurring with a known expiry date, soonest expiry first, at most n.
func TopRecurringSoonest(items []domain.Item, n int) []domain.Item {
	var out []domain.Item
	for _, it := range items {
		if it.IsRecurring && it.ExpiryDate != nil {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpiryDate.Before(*out[j].ExpiryDate) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
