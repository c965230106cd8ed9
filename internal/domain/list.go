package domain

import "time"

// Domain entities: business objects (the truth).
// No dependency on Gin, Postgres or Redis.

// ShoppingList is owned by one account and mutable by anyone in SharedWith.
type ShoppingList struct {
	ID          int64
	OwnerID     int64
	Title       string
	Observation string
	// Date is the list's reference date (what month the spend belongs to),
	// distinct from CreatedAt.
	Date               time.Time
	PlannedBudgetCents int64 // 0 = no budget set
	IsPublic           bool
	PublicToken        string // uuid, read-only access when IsPublic
	SharedWith         []string
	Items              []Item

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// SharedWithContains reports whether email is a collaborator on the list.
func (l ShoppingList) SharedWithContains(email string) bool {
	for _, e := range l.SharedWith {
		if e == email {
			return true
		}
	}
	return false
}
