package analytics

import (
	"fmt"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

// Bucket is one row of a grouped-spend breakdown.
type Bucket struct {
	Key        string
	TotalCents int64
	// Percent is this bucket's share of the grand total, 0 when the grand
	// total is 0.
	Percent float64
}

// KeyFunc extracts the grouping key for an item.
type KeyFunc func(domain.Item) string

// GroupTotals buckets items by key and sums their line totals. Buckets keep
// the insertion order of first occurrence; consumers sort at presentation
// time if they need to.
func GroupTotals(items []domain.Item, key KeyFunc) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	var grand int64

	for _, it := range items {
		k := key(it)
		total := LineTotal(it)
		grand += total
		if i, ok := index[k]; ok {
			buckets[i].TotalCents += total
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, Bucket{Key: k, TotalCents: total})
	}

	if grand > 0 {
		for i := range buckets {
			buckets[i].Percent = float64(buckets[i].TotalCents) / float64(grand) * 100
		}
	}
	return buckets
}

// ByCategory groups on the item's category; missing categories were already
// folded into "Outros" at ingestion.
func ByCategory(it domain.Item) string {
	if it.Category == "" {
		return domain.CategoryOther.String()
	}
	return it.Category.String()
}

// BySupermarket groups on the free-text supermarket label.
func BySupermarket(it domain.Item) string {
	if it.Supermarket == "" {
		return domain.SupermarketUnknown
	}
	return it.Supermarket
}

// ByMonth returns a key func that groups items by the calendar month of their
// owning list's date. listDates maps list ID to that date; items from unknown
// lists land in the zero-month bucket rather than being dropped.
func ByMonth(listDates map[int64]time.Time) KeyFunc {
	return func(it domain.Item) string {
		d := listDates[it.ListID]
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	}
}
