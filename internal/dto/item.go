package dto

import "time"

type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=120"`
	Category    string   `json:"category" binding:"max=40"`
	Quantity    Quantity `json:"quantity"` // optional: defaults to 1
	Unit        string   `json:"unit" binding:"max=20"`
	Price       Amount   `json:"price"` // optional: defaults to 0
	Supermarket string   `json:"supermarket" binding:"max=120"`
	ExpiryDate  DateOnly `json:"expiry_date"`
	IsRecurring bool     `json:"is_recurring"`
}

type UpdateItemRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=120"`
	Category    *string   `json:"category" binding:"omitempty,max=40"`
	Quantity    *Quantity `json:"quantity"`
	Unit        *string   `json:"unit" binding:"omitempty,max=20"`
	Price       *Amount   `json:"price"`
	Supermarket *string   `json:"supermarket" binding:"omitempty,max=120"`
	ExpiryDate  *DateOnly `json:"expiry_date"`
	IsRecurring *bool     `json:"is_recurring"`
}

// AcquireItemRequest moves a checked list item into the pantry. The expiry
// date is confirmed by the user at this point and is mandatory.
type AcquireItemRequest struct {
	ExpiryDate DateOnly `json:"expiry_date" binding:"required"`
}

type ItemResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit,omitempty"`
	Price       string     `json:"price"`
	LineTotal   string     `json:"line_total"`
	Checked     bool       `json:"checked"`
	Supermarket string     `json:"supermarket,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	IsRecurring bool       `json:"is_recurring"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
