// Package analytics holds the pure aggregation core: line totals, list
// summaries, grouped spend, expiry classification and top-N rankings.
// Everything here is a function of its inputs — no I/O, no clock reads,
// no shared state — so callers can recompute freely on every snapshot.
package analytics

import (
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

// LineTotal returns an item's monetary contribution to its list, in cents.
//
// For countable units (piece, box, package) the entered price is per-unit and
// is multiplied by quantity. For weight/volume units (kg, g, liter, ml) and
// anything unrecognized, the entered price is already the total paid for the
// weighed amount, so it is returned as-is. Negative values never leak out.
func LineTotal(it domain.Item) int64 {
	price := it.PriceCents
	if price < 0 {
		price = 0
	}
	if it.Unit.Multipliable() {
		return domain.MulCents(price, it.Quantity)
	}
	return price
}
