package dto

import "time"

type CreatePantryItemRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=120"`
	Category   string   `json:"category" binding:"max=40"`
	Quantity   Quantity `json:"quantity"`
	Unit       string   `json:"unit" binding:"max=20"`
	ExpiryDate DateOnly `json:"expiry_date" binding:"required"`
}

type UpdatePantryItemRequest struct {
	Quantity   *Quantity `json:"quantity"`
	ExpiryDate *DateOnly `json:"expiry_date"`
}

type PantryItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Status       string    `json:"status"`
	DaysLeft     int       `json:"days_left"`
}

type PantryResponse struct {
	Items []PantryItemResponse `json:"items"`
}

// ExpiringResponse is the "what should I eat first" view.
type ExpiringResponse struct {
	Upcoming     []PantryItemResponse `json:"upcoming"`
	ExpiredCount int                  `json:"expired_count"`
	SoonCount    int                  `json:"soon_count"`
	SafeCount    int                  `json:"safe_count"`
}
