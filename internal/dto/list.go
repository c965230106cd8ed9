package dto

import "time"

type CreateListRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=120"`
	Observation   string   `json:"observation" binding:"max=1000"`
	Date          DateOnly `json:"date"`           // optional: defaults to today
	PlannedBudget Amount   `json:"planned_budget"` // optional
}

type UpdateListRequest struct {
	Title         *string   `json:"title" binding:"omitempty,min=1,max=120"`
	Observation   *string   `json:"observation" binding:"omitempty,max=1000"`
	Date          *DateOnly `json:"date"`
	PlannedBudget *Amount   `json:"planned_budget"`
}

// ShareRequest adds or removes one collaborator by email.
type ShareRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VisibilityRequest toggles public (link-readable) access.
type VisibilityRequest struct {
	Public bool `json:"public"`
}

type ListResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Observation   string         `json:"observation,omitempty"`
	Date          time.Time      `json:"date"`
	PlannedBudget string         `json:"planned_budget,omitempty"`
	IsPublic      bool           `json:"is_public"`
	PublicToken   string         `json:"public_token,omitempty"`
	SharedWith    []string       `json:"shared_with,omitempty"`
	Items         []ItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ListsResponse struct {
	Items []ListResponse `json:"items"`
}

// ListSummaryResponse is the derived spend view of one list.
type ListSummaryResponse struct {
	ListID                int64   `json:"list_id"`
	TotalSpent            string  `json:"total_spent"`
	CheckedSpent          string  `json:"checked_spent"`
	ItemCount             int     `json:"item_count"`
	CheckedCount          int     `json:"checked_count"`
	CheckedPercent        float64 `json:"checked_percent"`
	PlannedBudget         string  `json:"planned_budget,omitempty"`
	BudgetProgressPercent float64 `json:"budget_progress_percent"`
	IsOverBudget          bool    `json:"is_over_budget"`
	Overage               string  `json:"overage,omitempty"`
}
