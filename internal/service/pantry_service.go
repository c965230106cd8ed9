package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/analytics"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/cache"
	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrItemNotChecked = errors.New("item must be checked before acquiring")
	ErrExpiryRequired = errors.New("expiry date is required")
)

// upcomingCount is how many soonest expirations the expiring view returns.
const upcomingCount = 5

// PantryService owns the post-purchase inventory: acquiring checked list
// items, direct edits and the expiring-soon view. The clock is injectable so
// expiry classification is deterministic in tests.
type PantryService struct {
	pantry repo.PantryRepo
	lists  *ListService
	cache  *cache.ListCache
	now    func() time.Time
	sf     singleflight.Group
}

// NewPantryService creates a PantryService. If c is nil, caching is disabled.
func NewPantryService(pantry repo.PantryRepo, lists *ListService, c *cache.ListCache) *PantryService {
	return &PantryService{pantry: pantry, lists: lists, cache: c, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *PantryService) WithClock(now func() time.Time) *PantryService {
	s.now = now
	return s
}

// Acquire turns a checked list item into a pantry item with the confirmed
// expiry date. PurchaseDate is fixed to the current day.
func (s *PantryService) Acquire(ctx context.Context, userID, listID, itemID int64, expiry time.Time) (dom.PantryItem, error) {
	if expiry.IsZero() {
		return dom.PantryItem{}, ErrExpiryRequired
	}
	l, err := s.lists.Get(ctx, userID, listID)
	if err != nil {
		return dom.PantryItem{}, err
	}
	var src *dom.Item
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			src = &l.Items[i]
			break
		}
	}
	if src == nil {
		return dom.PantryItem{}, ErrNotFound
	}
	if !src.Checked {
		return dom.PantryItem{}, ErrItemNotChecked
	}
	p, err := s.pantry.Create(ctx, dom.PantryItem{
		OwnerID:      userID,
		Name:         src.Name,
		Category:     src.Category,
		Quantity:     src.Quantity,
		Unit:         src.Unit,
		PurchaseDate: s.today(),
		ExpiryDate:   expiry,
	})
	if err != nil {
		return dom.PantryItem{}, err
	}
	s.invalidate(ctx, userID)
	return p, nil
}

// Create adds a pantry item directly, without going through a list.
func (s *PantryService) Create(ctx context.Context, ownerID int64, name, category string, quantity *float64, unit string, expiry time.Time) (dom.PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.PantryItem{}, ErrEmptyTitle
	}
	if expiry.IsZero() {
		return dom.PantryItem{}, ErrExpiryRequired
	}
	p, err := s.pantry.Create(ctx, dom.PantryItem{
		OwnerID:      ownerID,
		Name:         name,
		Category:     dom.ParseCategory(category),
		Quantity:     dom.NormalizeQuantity(quantity),
		Unit:         dom.ParseUnit(unit),
		PurchaseDate: s.today(),
		ExpiryDate:   expiry,
	})
	if err != nil {
		return dom.PantryItem{}, err
	}
	s.invalidate(ctx, ownerID)
	return p, nil
}

// List returns the owner's pantry, soonest expiry first.
func (s *PantryService) List(ctx context.Context, ownerID int64) ([]dom.PantryItem, error) {
	if s.cache != nil {
		key := "pantry:" + strconv.FormatInt(ownerID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if items, err := s.cache.GetPantry(ctx, ownerID); err == nil && items != nil {
				return items, nil
			}
			items, err := s.pantry.ListByOwner(ctx, ownerID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetPantry(ctx, ownerID, items)
			return items, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.PantryItem), nil
	}
	return s.pantry.ListByOwner(ctx, ownerID)
}

// Update adjusts quantity and/or expiry date of a pantry item.
func (s *PantryService) Update(ctx context.Context, ownerID, id int64, quantity *float64, expiry *time.Time) (dom.PantryItem, error) {
	existing, err := s.pantry.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PantryItem{}, ErrNotFound
		}
		return dom.PantryItem{}, err
	}
	patch := existing
	if quantity != nil {
		patch.Quantity = dom.NormalizeQuantity(quantity)
	}
	if expiry != nil {
		if expiry.IsZero() {
			return dom.PantryItem{}, ErrExpiryRequired
		}
		patch.ExpiryDate = *expiry
	}
	p, err := s.pantry.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PantryItem{}, ErrNotFound
		}
		return dom.PantryItem{}, err
	}
	s.invalidate(ctx, ownerID)
	return p, nil
}

// Delete removes a pantry item (consumed or discarded).
func (s *PantryService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.pantry.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// Expiring returns the soonest upcoming expirations plus status counts for
// the whole pantry.
func (s *PantryService) Expiring(ctx context.Context, ownerID int64) ([]analytics.ExpiringItem, int, int, int, error) {
	items, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	today := s.today()
	upcoming := analytics.UpcomingExpirations(today, items, upcomingCount)
	expired, soon, safe := analytics.CountByStatus(today, items)
	return upcoming, expired, soon, safe, nil
}

// Today returns the service's current day (injectable clock).
func (s *PantryService) Today() time.Time { return s.today() }

func (s *PantryService) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *PantryService) invalidate(ctx context.Context, ownerID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidatePantry(ctx, ownerID)
	}
}
