package domain

import "time"

// PantryItem is the post-purchase inventory record, usually created from a
// checked list item. PurchaseDate is set at creation and never changes;
// ExpiryDate is mandatory.
type PantryItem struct {
	ID           int64
	OwnerID      int64
	Name         string
	Category     Category
	Quantity     float64
	Unit         Unit
	PurchaseDate time.Time
	ExpiryDate   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
