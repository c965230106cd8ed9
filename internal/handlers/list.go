package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/analytics"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/auth"
	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/dto"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler handles shopping lists and the items inside them.
type ListHandler struct {
	svc *service.ListService
}

func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// Create godoc
// @Summary      Create a shopping list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateListRequest  true  "List body"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c),
		req.Title, req.Observation, req.Date.Ptr(), req.PlannedBudget.CentsPtr())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listToResponse(l))
}

// List godoc
// @Summary      List own and shared shopping lists
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListsResponse
// @Failure      500  {object}  map[string]string
// @Router       /lists [get]
func (h *ListHandler) List(c *gin.Context) {
	lists, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListsResponse{Items: listsToResponses(lists)})
}

// GetByID godoc
// @Summary      Get a shopping list by ID
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.ListResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	l, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// GetPublic godoc
// @Summary      Read a public list by its share token
// @Tags         lists
// @Produce      json
// @Param        token  path      string  true  "Public token"
// @Success      200    {object}  dto.ListResponse
// @Failure      404    {object}  map[string]string
// @Router       /public/lists/{token} [get]
func (h *ListHandler) GetPublic(c *gin.Context) {
	l, err := h.svc.GetPublic(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Update godoc
// @Summary      Update a shopping list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.UpdateListRequest  true  "Partial update"
// @Success      200   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id} [patch]
func (h *ListHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var budget *int64
	if req.PlannedBudget != nil {
		budget = req.PlannedBudget.CentsPtr()
	}
	var date *time.Time
	if req.Date != nil {
		date = req.Date.Ptr()
	}
	l, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id,
		req.Title, req.Observation, date, budget)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Delete godoc
// @Summary      Move a list to the trash
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Trash godoc
// @Summary      List own trashed lists
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListsResponse
// @Failure      500  {object}  map[string]string
// @Router       /lists/trash [get]
func (h *ListHandler) Trash(c *gin.Context) {
	lists, err := h.svc.Trash(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListsResponse{Items: listsToResponses(lists)})
}

// Restore godoc
// @Summary      Restore a trashed list
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/restore [post]
func (h *ListHandler) Restore(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Restore(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Purge godoc
// @Summary      Permanently delete a trashed list
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/purge [delete]
func (h *ListHandler) Purge(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Purge(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary      Spend summary of a list
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.ListSummaryResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/summary [get]
func (h *ListHandler) Summary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	l, sum, err := h.svc.Summary(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaryToResponse(l, sum))
}

// Share godoc
// @Summary      Share a list with another account by email
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.ShareRequest  true  "Collaborator email"
// @Success      200   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id}/share [post]
func (h *ListHandler) Share(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Share(c.Request.Context(), auth.UserIDFromContext(c), id, req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Unshare godoc
// @Summary      Remove a collaborator from a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.ShareRequest  true  "Collaborator email"
// @Success      200   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id}/unshare [post]
func (h *ListHandler) Unshare(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Unshare(c.Request.Context(), auth.UserIDFromContext(c), id, req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// SetVisibility godoc
// @Summary      Publish or unpublish a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.VisibilityRequest  true  "Visibility"
// @Success      200   {object}  dto.ListResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id}/visibility [post]
func (h *ListHandler) SetVisibility(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.SetVisibility(c.Request.Context(), auth.UserIDFromContext(c), id, req.Public)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeServiceError maps service sentinel errors to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrSelfShare),
		errors.Is(err, service.ErrItemNotChecked),
		errors.Is(err, service.ErrExpiryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func listToResponse(l dom.ShoppingList) dto.ListResponse {
	out := dto.ListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Observation: l.Observation,
		Date:        l.Date,
		IsPublic:    l.IsPublic,
		SharedWith:  l.SharedWith,
		Items:       itemsToResponses(l.Items),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if l.PlannedBudgetCents > 0 {
		out.PlannedBudget = dto.FormatCents(l.PlannedBudgetCents)
	}
	if l.IsPublic {
		out.PublicToken = l.PublicToken
	}
	return out
}

func listsToResponses(lists []dom.ShoppingList) []dto.ListResponse {
	out := make([]dto.ListResponse, len(lists))
	for i := range lists {
		out[i] = listToResponse(lists[i])
	}
	return out
}

func summaryToResponse(l dom.ShoppingList, s analytics.ListSummary) dto.ListSummaryResponse {
	out := dto.ListSummaryResponse{
		ListID:                l.ID,
		TotalSpent:            dto.FormatCents(s.TotalSpentCents),
		CheckedSpent:          dto.FormatCents(s.CheckedSpentCents),
		ItemCount:             s.ItemCount,
		CheckedCount:          s.CheckedCount,
		CheckedPercent:        s.CheckedPercent(),
		BudgetProgressPercent: s.BudgetProgressPercent,
		IsOverBudget:          s.IsOverBudget,
	}
	if l.PlannedBudgetCents > 0 {
		out.PlannedBudget = dto.FormatCents(l.PlannedBudgetCents)
	}
	if s.IsOverBudget {
		out.Overage = dto.FormatCents(s.OverageCents)
	}
	return out
}
