package domain

import "time"

// Item belongs to exactly one shopping list. Quantity and price are already
// normalized (see money.go) by the time an Item exists.
type Item struct {
	ID          int64
	ListID      int64
	Name        string
	Category    Category
	Quantity    float64
	Unit        Unit
	PriceCents  int64
	Checked     bool
	Supermarket string
	ExpiryDate  *time.Time
	IsRecurring bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
