package service

import (
	"context"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/analytics"
	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/repo"
)

// GroupKey selects the grouping dimension for a spend breakdown.
type GroupKey string

const (
	GroupByCategory    GroupKey = "category"
	GroupBySupermarket GroupKey = "supermarket"
	GroupByMonth       GroupKey = "month"
)

// AnalyticsService produces the presentation-ready aggregates for chart
// surfaces. It only reads materialized snapshots; all math lives in the
// analytics package.
type AnalyticsService struct {
	lists repo.ListRepo
}

func NewAnalyticsService(lists repo.ListRepo) *AnalyticsService {
	return &AnalyticsService{lists: lists}
}

// Breakdown sums spend per bucket over the owner's items, optionally
// restricted to lists dated within [from, to].
func (s *AnalyticsService) Breakdown(ctx context.Context, ownerID int64, key GroupKey, from, to *time.Time) ([]analytics.Bucket, int64, error) {
	items, dates, err := s.lists.ItemsForOwner(ctx, ownerID, from, to)
	if err != nil {
		return nil, 0, err
	}
	var keyFn analytics.KeyFunc
	switch key {
	case GroupBySupermarket:
		keyFn = analytics.BySupermarket
	case GroupByMonth:
		keyFn = analytics.ByMonth(dates)
	default:
		keyFn = analytics.ByCategory
	}
	buckets := analytics.GroupTotals(items, keyFn)
	var total int64
	for _, b := range buckets {
		total += b.TotalCents
	}
	return buckets, total, nil
}

// TopItems returns the n most expensive items across the owner's lists.
func (s *AnalyticsService) TopItems(ctx context.Context, ownerID int64, n int, from, to *time.Time) ([]analytics.RankedItem, error) {
	items, _, err := s.lists.ItemsForOwner(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.TopByCost(items, n), nil
}

// Suggestions returns recurring items closest to their expiry date, the
// quick re-add candidates for a new list.
func (s *AnalyticsService) Suggestions(ctx context.Context, ownerID int64, n int) ([]dom.Item, error) {
	items, _, err := s.lists.ItemsForOwner(ctx, ownerID, nil, nil)
	if err != nil {
		return nil, err
	}
	return analytics.TopRecurringSoonest(items, n), nil
}

// Overview summarizes every live list the user can see and rolls the totals up.
func (s *AnalyticsService) Overview(ctx context.Context, lists []dom.ShoppingList) (int64, int, []analytics.ListSummary) {
	var grand int64
	var overBudget int
	summaries := make([]analytics.ListSummary, 0, len(lists))
	for _, l := range lists {
		sum := analytics.Summarize(l)
		grand += sum.TotalSpentCents
		if sum.IsOverBudget {
			overBudget++
		}
		summaries = append(summaries, sum)
	}
	return grand, overBudget, summaries
}
