package analytics

import (
	"sort"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

// ExpiryStatus classifies how close to expiry a pantry item is.
type ExpiryStatus string

const (
	StatusExpired      ExpiryStatus = "expired"
	StatusExpiringSoon ExpiryStatus = "expiring_soon"
	StatusSafe         ExpiryStatus = "safe"
)

// ExpiringSoonDays is the inclusive window for "expiring soon".
const ExpiringSoonDays = 7

// DiffDays returns the whole-day difference between today and expiry,
// negative when already expired. Time-of-day is ignored: both dates are
// truncated to their calendar day.
func DiffDays(today, expiry time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// Classify returns the status and day difference for an expiry date relative
// to an injectable "today".
func Classify(today, expiry time.Time) (ExpiryStatus, int) {
	d := DiffDays(today, expiry)
	switch {
	case d < 0:
		return StatusExpired, d
	case d <= ExpiringSoonDays:
		return StatusExpiringSoon, d
	default:
		return StatusSafe, d
	}
}

// ExpiringItem pairs a pantry item with its computed expiry status.
type ExpiringItem struct {
	Item     domain.PantryItem
	Status   ExpiryStatus
	DiffDays int
}

// UpcomingExpirations returns the not-yet-expired pantry items closest to
// their expiry date, ascending by days remaining, at most n entries.
// Equal-ranked items keep their input order.
func UpcomingExpirations(today time.Time, items []domain.PantryItem, n int) []ExpiringItem {
	var out []ExpiringItem
	for _, it := range items {
		if it.ExpiryDate.IsZero() {
			continue
		}
		status, d := Classify(today, it.ExpiryDate)
		if d < 0 {
			continue
		}
		out = append(out, ExpiringItem{Item: it, Status: status, DiffDays: d})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DiffDays < out[j].DiffDays })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CountByStatus tallies a pantry snapshot into expired / expiring-soon / safe.
func CountByStatus(today time.Time, items []domain.PantryItem) (expired, soon, safe int) {
	for _, it := range items {
		if it.ExpiryDate.IsZero() {
			continue
		}
		status, _ := Classify(today, it.ExpiryDate)
		switch status {
		case StatusExpired:
			expired++
		case StatusExpiringSoon:
			soon++
		default:
			safe++
		}
	}
	return expired, soon, safe
}
