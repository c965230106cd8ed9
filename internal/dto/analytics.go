package dto

// BucketResponse is one row of a grouped-spend breakdown (category,
// supermarket or month).
type BucketResponse struct {
	Key     string  `json:"key"`
	Total   string  `json:"total"`
	Percent float64 `json:"percent"`
}

type BreakdownResponse struct {
	GroupedBy string           `json:"grouped_by"`
	Total     string           `json:"total"`
	Buckets   []BucketResponse `json:"buckets"`
}

type TopItemResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Supermarket string `json:"supermarket,omitempty"`
	Total       string `json:"total"`
}

type TopItemsResponse struct {
	Items []TopItemResponse `json:"items"`
}

type SuggestionResponse struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	ExpiryDate string `json:"expiry_date"`
}

type SuggestionsResponse struct {
	Items []SuggestionResponse `json:"items"`
}

// OverviewResponse combines per-list summaries for the account.
type OverviewResponse struct {
	TotalSpent      string                `json:"total_spent"`
	ListCount       int                   `json:"list_count"`
	OverBudgetCount int                   `json:"over_budget_count"`
	Lists           []ListSummaryResponse `json:"lists"`
}
