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

// PantryHandler handles the post-purchase inventory.
type PantryHandler struct {
	svc *service.PantryService
}

func NewPantryHandler(svc *service.PantryService) *PantryHandler {
	return &PantryHandler{svc: svc}
}

// List godoc
// @Summary      List pantry items
// @Tags         pantry
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.PantryResponse
// @Failure      500  {object}  map[string]string
// @Router       /pantry [get]
func (h *PantryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	today := h.svc.Today()
	out := make([]dto.PantryItemResponse, len(items))
	for i := range items {
		out[i] = pantryItemToResponse(items[i], today)
	}
	c.JSON(http.StatusOK, dto.PantryResponse{Items: out})
}

// Create godoc
// @Summary      Add a pantry item directly
// @Tags         pantry
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreatePantryItemRequest  true  "Pantry item body"
// @Success      201   {object}  dto.PantryItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /pantry [post]
func (h *PantryHandler) Create(c *gin.Context) {
	var req dto.CreatePantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var expiry time.Time
	if d := req.ExpiryDate.Ptr(); d != nil {
		expiry = *d
	}
	p, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c),
		req.Name, req.Category, req.Quantity.Ptr(), req.Unit, expiry)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pantryItemToResponse(p, h.svc.Today()))
}

// Update godoc
// @Summary      Adjust a pantry item
// @Tags         pantry
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Pantry item ID"
// @Param        body  body      dto.UpdatePantryItemRequest  true  "Partial update"
// @Success      200   {object}  dto.PantryItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /pantry/{id} [patch]
func (h *PantryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var qty *float64
	if req.Quantity != nil {
		qty = req.Quantity.Ptr()
	}
	var expiry *time.Time
	if req.ExpiryDate != nil {
		expiry = req.ExpiryDate.Ptr()
	}
	p, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, qty, expiry)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantryItemToResponse(p, h.svc.Today()))
}

// Delete godoc
// @Summary      Remove a pantry item
// @Tags         pantry
// @Security     CookieAuth
// @Param        id   path  int  true  "Pantry item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /pantry/{id} [delete]
func (h *PantryHandler) Delete(c *gin.Context) {
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

// Expiring godoc
// @Summary      Upcoming expirations and freshness counts
// @Tags         pantry
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ExpiringResponse
// @Failure      500  {object}  map[string]string
// @Router       /pantry/expiring [get]
func (h *PantryHandler) Expiring(c *gin.Context) {
	upcoming, expired, soon, safe, err := h.svc.Expiring(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.PantryItemResponse, len(upcoming))
	for i, e := range upcoming {
		items[i] = pantryItemToResponse(e.Item, h.svc.Today())
	}
	c.JSON(http.StatusOK, dto.ExpiringResponse{
		Upcoming:     items,
		ExpiredCount: expired,
		SoonCount:    soon,
		SafeCount:    safe,
	})
}

func pantryItemToResponse(p dom.PantryItem, today time.Time) dto.PantryItemResponse {
	status, days := analytics.Classify(today, p.ExpiryDate)
	return dto.PantryItemResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		Quantity:     p.Quantity,
		Unit:         string(p.Unit),
		PurchaseDate: p.PurchaseDate,
		ExpiryDate:   p.ExpiryDate,
		Status:       string(status),
		DaysLeft:     days,
	}
}
