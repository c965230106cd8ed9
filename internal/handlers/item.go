package handlers

import (
	"net/http"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/analytics"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/auth"
	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/dto"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles the items inside a shopping list, including the
// checkout step that moves a checked item into the pantry.
type ItemHandler struct {
	svc    *service.ListService
	pantry *service.PantryService
}

func NewItemHandler(svc *service.ListService, pantry *service.PantryService) *ItemHandler {
	return &ItemHandler{svc: svc, pantry: pantry}
}

// Add godoc
// @Summary      Add an item to a list
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id}/items [post]
func (h *ItemHandler) Add(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := h.svc.AddItem(c.Request.Context(), auth.UserIDFromContext(c), listID, service.ItemParams{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity.Ptr(),
		Unit:        req.Unit,
		PriceCents:  req.Price.CentsPtr(),
		Supermarket: req.Supermarket,
		ExpiryDate:  req.ExpiryDate.Ptr(),
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemToResponse(it))
}

// Update godoc
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Param        body    body      dto.UpdateItemRequest  true  "Partial update"
// @Success      200     {object}  dto.ItemResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /lists/{id}/items/{itemID} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := service.UpdateItemParams{
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		Supermarket: req.Supermarket,
		IsRecurring: req.IsRecurring,
	}
	if req.Quantity != nil {
		p.Quantity, p.QuantitySet = req.Quantity.Ptr(), true
	}
	if req.Price != nil {
		p.PriceCents, p.PriceSet = req.Price.CentsPtr(), true
	}
	if req.ExpiryDate != nil {
		p.ExpiryDate, p.ExpirySet = req.ExpiryDate.Ptr(), true
	}
	it, err := h.svc.UpdateItem(c.Request.Context(), auth.UserIDFromContext(c), listID, itemID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Toggle godoc
// @Summary      Toggle an item's checked state
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Param        id      path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Success      200     {object}  dto.ItemResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /lists/{id}/items/{itemID}/toggle [post]
func (h *ItemHandler) Toggle(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	it, err := h.svc.ToggleItem(c.Request.Context(), auth.UserIDFromContext(c), listID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Remove godoc
// @Summary      Remove an item from a list
// @Tags         items
// @Security     CookieAuth
// @Param        id      path  int  true  "List ID"
// @Param        itemID  path  int  true  "Item ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/items/{itemID} [delete]
func (h *ItemHandler) Remove(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	if err := h.svc.RemoveItem(c.Request.Context(), auth.UserIDFromContext(c), listID, itemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Acquire godoc
// @Summary      Move a checked item into the pantry
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id      path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Param        body    body      dto.AcquireItemRequest  true  "Confirmed expiry date"
// @Success      201     {object}  dto.PantryItemResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /lists/{id}/items/{itemID}/acquire [post]
func (h *ItemHandler) Acquire(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	var req dto.AcquireItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var expiry time.Time
	if d := req.ExpiryDate.Ptr(); d != nil {
		expiry = *d
	}
	p, err := h.pantry.Acquire(c.Request.Context(), auth.UserIDFromContext(c), listID, itemID, expiry)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pantryItemToResponse(p, h.pantry.Today()))
}

func itemToResponse(it dom.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Category:    string(it.Category),
		Quantity:    it.Quantity,
		Unit:        string(it.Unit),
		Price:       dto.FormatCents(it.PriceCents),
		LineTotal:   dto.FormatCents(analytics.LineTotal(it)),
		Checked:     it.Checked,
		Supermarket: it.Supermarket,
		ExpiryDate:  it.ExpiryDate,
		IsRecurring: it.IsRecurring,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func itemsToResponses(items []dom.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, len(items))
	for i := range items {
		out[i] = itemToResponse(items[i])
	}
	return out
}
