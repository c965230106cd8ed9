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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrEmptyTitle = errors.New("title is required")
	ErrSelfShare  = errors.New("cannot share a list with its owner")
)

// ItemParams carries normalized inputs for creating or patching an item.
// Pointer fields distinguish "not provided" from explicit values.
type ItemParams struct {
	Name        string
	Category    string
	Quantity    *float64
	Unit        string
	PriceCents  *int64
	Supermarket string
	ExpiryDate  *time.Time
	IsRecurring bool
}

// ListService owns shopping-list business rules: CRUD, item lifecycle,
// sharing, trash, and the per-list spend summary.
type ListService struct {
	lists repo.ListRepo
	users repo.UserRepo
	cache *cache.ListCache
	sf    singleflight.Group
}

// NewListService creates a ListService. If c is nil, caching is disabled.
func NewListService(lists repo.ListRepo, users repo.UserRepo, c *cache.ListCache) *ListService {
	return &ListService{lists: lists, users: users, cache: c}
}

func (s *ListService) Create(ctx context.Context, ownerID int64, title, observation string, date *time.Time, budgetCents *int64) (dom.ShoppingList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.ShoppingList{}, ErrEmptyTitle
	}
	d := time.Now().UTC()
	if date != nil {
		d = *date
	}
	l, err := s.lists.Create(ctx, dom.ShoppingList{
		OwnerID:            ownerID,
		Title:              title,
		Observation:        strings.TrimSpace(observation),
		Date:               d,
		PlannedBudgetCents: dom.NormalizeCents(budgetCents),
		PublicToken:        uuid.NewString(),
		SharedWith:         []string{},
	})
	if err != nil {
		return dom.ShoppingList{}, err
	}
	s.invalidate(ctx, l, ownerID)
	return l, nil
}

// List returns every live list the user owns or collaborates on.
func (s *ListService) List(ctx context.Context, userID int64) ([]dom.ShoppingList, error) {
	email, err := s.userEmail(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		key := "lists:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if lists, err := s.cache.GetLists(ctx, userID); err == nil && lists != nil {
				return lists, nil
			}
			lists, err := s.lists.ListForUser(ctx, userID, email)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetLists(ctx, userID, lists)
			return lists, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.ShoppingList), nil
	}
	return s.lists.ListForUser(ctx, userID, email)
}

func (s *ListService) Get(ctx context.Context, userID, listID int64) (dom.ShoppingList, error) {
	return s.authorized(ctx, userID, listID, false)
}

// GetPublic returns a public list by its share token, without a session.
func (s *ListService) GetPublic(ctx context.Context, token string) (dom.ShoppingList, error) {
	l, err := s.lists.GetByPublicToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ShoppingList{}, ErrNotFound
		}
		return dom.ShoppingList{}, err
	}
	return l, nil
}

func (s *ListService) Update(ctx context.Context, userID, listID int64, title, observation *string, date *time.Time, budgetCents *int64) (dom.ShoppingList, error) {
	existing, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return dom.ShoppingList{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
		if patch.Title == "" {
			return dom.ShoppingList{}, ErrEmptyTitle
		}
	}
	if observation != nil {
		patch.Observation = strings.TrimSpace(*observation)
	}
	if date != nil {
		patch.Date = *date
	}
	if budgetCents != nil {
		patch.PlannedBudgetCents = dom.NormalizeCents(budgetCents)
	}
	l, err := s.lists.Update(ctx, listID, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ShoppingList{}, ErrNotFound
		}
		return dom.ShoppingList{}, err
	}
	s.invalidate(ctx, l, userID)
	return l, nil
}

// Delete moves a list to the trash. Owner only.
func (s *ListService) Delete(ctx context.Context, userID, listID int64) error {
	l, err := s.authorized(ctx, userID, listID, true)
	if err != nil {
		return err
	}
	if err := s.lists.SoftDelete(ctx, listID); err != nil {
		return err
	}
	s.invalidate(ctx, l, userID)
	return nil
}

// Restore brings a trashed list back. Owner only.
func (s *ListService) Restore(ctx context.Context, userID, listID int64) error {
	if err := s.lists.Restore(ctx, userID, listID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateLists(ctx, userID)
	}
	return nil
}

// Purge removes a trashed list permanently. Owner only.
func (s *ListService) Purge(ctx context.Context, userID, listID int64) error {
	if err := s.lists.Purge(ctx, userID, listID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Trash lists the user's soft-deleted lists.
func (s *ListService) Trash(ctx context.Context, userID int64) ([]dom.ShoppingList, error) {
	return s.lists.Trash(ctx, userID)
}

// Share adds a collaborator email. Owner only.
func (s *ListService) Share(ctx context.Context, userID, listID int64, email string) (dom.ShoppingList, error) {
	l, err := s.authorized(ctx, userID, listID, true)
	if err != nil {
		return dom.ShoppingList{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	owner, err := s.users.GetByID(ctx, userID)
	if err == nil && owner.Email == email {
		return dom.ShoppingList{}, ErrSelfShare
	}
	if !l.SharedWithContains(email) {
		l.SharedWith = append(l.SharedWith, email)
		if err := s.lists.SetSharing(ctx, listID, l.SharedWith); err != nil {
			return dom.ShoppingList{}, err
		}
	}
	s.invalidate(ctx, l, userID)
	return l, nil
}

// Unshare removes a collaborator email. Owner only.
func (s *ListService) Unshare(ctx context.Context, userID, listID int64, email string) (dom.ShoppingList, error) {
	l, err := s.authorized(ctx, userID, listID, true)
	if err != nil {
		return dom.ShoppingList{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	kept := l.SharedWith[:0]
	for _, e := range l.SharedWith {
		if e != email {
			kept = append(kept, e)
		}
	}
	l.SharedWith = kept
	if err := s.lists.SetSharing(ctx, listID, l.SharedWith); err != nil {
		return dom.ShoppingList{}, err
	}
	s.invalidate(ctx, l, userID)
	return l, nil
}

// SetVisibility makes a list public (link-readable) or private. A fresh token
// is issued on every publish so old links stop working after unpublish.
func (s *ListService) SetVisibility(ctx context.Context, userID, listID int64, public bool) (dom.ShoppingList, error) {
	l, err := s.authorized(ctx, userID, listID, true)
	if err != nil {
		return dom.ShoppingList{}, err
	}
	l.IsPublic = public
	l.PublicToken = uuid.NewString()
	if err := s.lists.SetVisibility(ctx, listID, l.IsPublic, l.PublicToken); err != nil {
		return dom.ShoppingList{}, err
	}
	s.invalidate(ctx, l, userID)
	return l, nil
}

// Summary computes the derived spend view for one list.
func (s *ListService) Summary(ctx context.Context, userID, listID int64) (dom.ShoppingList, analytics.ListSummary, error) {
	l, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return dom.ShoppingList{}, analytics.ListSummary{}, err
	}
	return l, analytics.Summarize(l), nil
}

func (s *ListService) AddItem(ctx context.Context, userID, listID int64, p ItemParams) (dom.Item, error) {
	l, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return dom.Item{}, err
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return dom.Item{}, ErrEmptyTitle
	}
	it, err := s.lists.AddItem(ctx, dom.Item{
		ListID:      listID,
		Name:        name,
		Category:    dom.ParseCategory(p.Category),
		Quantity:    dom.NormalizeQuantity(p.Quantity),
		Unit:        dom.ParseUnit(p.Unit),
		PriceCents:  dom.NormalizeCents(p.PriceCents),
		Supermarket: strings.TrimSpace(p.Supermarket),
		ExpiryDate:  p.ExpiryDate,
		IsRecurring: p.IsRecurring,
	})
	if err != nil {
		return dom.Item{}, err
	}
	s.invalidate(ctx, l, userID)
	return it, nil
}

// UpdateItemParams carries a partial item patch; nil means "leave unchanged".
type UpdateItemParams struct {
	Name        *string
	Category    *string
	Quantity    *float64
	QuantitySet bool
	Unit        *string
	PriceCents  *int64
	PriceSet    bool
	Supermarket *string
	ExpiryDate  *time.Time
	ExpirySet   bool
	IsRecurring *bool
}

func (s *ListService) UpdateItem(ctx context.Context, userID, listID, itemID int64, p UpdateItemParams) (dom.Item, error) {
	l, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return dom.Item{}, err
	}
	existing, err := s.lists.GetItem(ctx, listID, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	patch := existing
	if p.Name != nil {
		patch.Name = strings.TrimSpace(*p.Name)
		if patch.Name == "" {
			return dom.Item{}, ErrEmptyTitle
		}
	}
	if p.Category != nil {
		patch.Category = dom.ParseCategory(*p.Category)
	}
	if p.QuantitySet {
		patch.Quantity = dom.NormalizeQuantity(p.Quantity)
	}
	if p.Unit != nil {
		patch.Unit = dom.ParseUnit(*p.Unit)
	}
	if p.PriceSet {
		patch.PriceCents = dom.NormalizeCents(p.PriceCents)
	}
	if p.Supermarket != nil {
		patch.Supermarket = strings.TrimSpace(*p.Supermarket)
	}
	if p.ExpirySet {
		patch.ExpiryDate = p.ExpiryDate
	}
	if p.IsRecurring != nil {
		patch.IsRecurring = *p.IsRecurring
	}
	it, err := s.lists.UpdateItem(ctx, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	s.invalidate(ctx, l, userID)
	return it, nil
}

// ToggleItem flips the checked state of an item.
func (s *ListService) ToggleItem(ctx context.Context, userID, listID, itemID int64) (dom.Item, error) {
	l, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return dom.Item{}, err
	}
	existing, err := s.lists.GetItem(ctx, listID, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	it, err := s.lists.SetChecked(ctx, listID, itemID, !existing.Checked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	s.invalidate(ctx, l, userID)
	return it, nil
}

func (s *ListService) RemoveItem(ctx context.Context, userID, listID, itemID int64) error {
	l, err := s.authorized(ctx, userID, listID, false)
	if err != nil {
		return err
	}
	if err := s.lists.SoftDeleteItem(ctx, listID, itemID); err != nil {
		return err
	}
	s.invalidate(ctx, l, userID)
	return nil
}

// authorized loads a live list and checks access: the owner always passes,
// collaborators pass unless ownerOnly is set.
func (s *ListService) authorized(ctx context.Context, userID, listID int64, ownerOnly bool) (dom.ShoppingList, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ShoppingList{}, ErrNotFound
		}
		return dom.ShoppingList{}, err
	}
	if l.OwnerID == userID {
		return l, nil
	}
	if ownerOnly {
		return dom.ShoppingList{}, ErrForbidden
	}
	email, err := s.userEmail(ctx, userID)
	if err != nil {
		return dom.ShoppingList{}, err
	}
	if !l.SharedWithContains(email) {
		return dom.ShoppingList{}, ErrForbidden
	}
	return l, nil
}

func (s *ListService) userEmail(ctx context.Context, userID int64) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return u.Email, nil
}

// invalidate drops cached snapshots for the actor and the list owner.
// Collaborator caches age out with the TTL instead of being chased here.
func (s *ListService) invalidate(ctx context.Context, l dom.ShoppingList, actorID int64) {
	if s.cache == nil {
		return
	}
	if l.OwnerID != 0 && l.OwnerID != actorID {
		_ = s.cache.InvalidateLists(ctx, actorID, l.OwnerID)
		return
	}
	_ = s.cache.InvalidateLists(ctx, actorID)
}
