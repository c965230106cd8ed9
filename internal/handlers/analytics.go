package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/auth"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/dto"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultTopN = 5

// AnalyticsHandler serves the spending-chart aggregates.
type AnalyticsHandler struct {
	svc   *service.AnalyticsService
	lists *service.ListService
}

func NewAnalyticsHandler(svc *service.AnalyticsService, lists *service.ListService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, lists: lists}
}

// Breakdown godoc
// @Summary      Spend grouped by category, supermarket or month
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        by    query     string  false  "category (default), supermarket or month"
// @Param        from  query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "End date (YYYY-MM-DD)"
// @Success      200   {object}  dto.BreakdownResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /analytics/breakdown [get]
func (h *AnalyticsHandler) Breakdown(c *gin.Context) {
	key := service.GroupKey(c.DefaultQuery("by", string(service.GroupByCategory)))
	switch key {
	case service.GroupByCategory, service.GroupBySupermarket, service.GroupByMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be category, supermarket or month"})
		return
	}
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	buckets, total, err := h.svc.Breakdown(c.Request.Context(), auth.UserIDFromContext(c), key, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := dto.BreakdownResponse{
		GroupedBy: string(key),
		Total:     dto.FormatCents(total),
		Buckets:   make([]dto.BucketResponse, len(buckets)),
	}
	for i, b := range buckets {
		out.Buckets[i] = dto.BucketResponse{
			Key:     b.Key,
			Total:   dto.FormatCents(b.TotalCents),
			Percent: b.Percent,
		}
	}
	c.JSON(http.StatusOK, out)
}

// Top godoc
// @Summary      Most expensive items by line total
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        n     query     int     false  "Result count (default 5)"
// @Param        from  query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "End date (YYYY-MM-DD)"
// @Success      200   {object}  dto.TopItemsResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /analytics/top [get]
func (h *AnalyticsHandler) Top(c *gin.Context) {
	n, ok := parseCount(c)
	if !ok {
		return
	}
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	ranked, err := h.svc.TopItems(c.Request.Context(), auth.UserIDFromContext(c), n, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := dto.TopItemsResponse{Items: make([]dto.TopItemResponse, len(ranked))}
	for i, r := range ranked {
		out.Items[i] = dto.TopItemResponse{
			Name:        r.Item.Name,
			Category:    string(r.Item.Category),
			Supermarket: r.Item.Supermarket,
			Total:       dto.FormatCents(r.TotalCents),
		}
	}
	c.JSON(http.StatusOK, out)
}

// Suggestions godoc
// @Summary      Recurring items closest to expiry
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        n    query     int  false  "Result count (default 5)"
// @Success      200  {object}  dto.SuggestionsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/suggestions [get]
func (h *AnalyticsHandler) Suggestions(c *gin.Context) {
	n, ok := parseCount(c)
	if !ok {
		return
	}
	items, err := h.svc.Suggestions(c.Request.Context(), auth.UserIDFromContext(c), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := dto.SuggestionsResponse{Items: make([]dto.SuggestionResponse, len(items))}
	for i, it := range items {
		s := dto.SuggestionResponse{Name: it.Name, Category: string(it.Category)}
		if it.ExpiryDate != nil {
			s.ExpiryDate = it.ExpiryDate.Format("2006-01-02")
		}
		out.Items[i] = s
	}
	c.JSON(http.StatusOK, out)
}

// Overview godoc
// @Summary      Account-wide budget overview
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.OverviewResponse
// @Failure      500  {object}  map[string]string
// @Router       /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	lists, err := h.lists.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	grand, overBudget, summaries := h.svc.Overview(c.Request.Context(), lists)
	out := dto.OverviewResponse{
		TotalSpent:      dto.FormatCents(grand),
		ListCount:       len(lists),
		OverBudgetCount: overBudget,
		Lists:           make([]dto.ListSummaryResponse, len(summaries)),
	}
	for i := range summaries {
		out.Lists[i] = summaryToResponse(lists[i], summaries[i])
	}
	c.JSON(http.StatusOK, out)
}

func parseCount(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("n", strconv.Itoa(defaultTopN))
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
		return 0, false
	}
	return n, true
}

func parseDateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	parse := func(name string) (*time.Time, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
			return nil, false
		}
		return &t, true
	}
	if from, ok = parse("from"); !ok {
		return nil, nil, false
	}
	if to, ok = parse("to"); !ok {
		return nil, nil, false
	}
	return from, to, true
}
