package service

import (
	"context"
	"time"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

// In-memory repo fakes for service tests. They honor the same contracts as
// the PG implementations, including pgx.ErrNoRows for misses.

type fakeUserRepo struct {
	users  map[int64]dom.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]dom.User), nextID: 1}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, email, hash string) (dom.User, error) {
	u := dom.User{ID: r.nextID, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	r.users[u.ID] = u
	r.nextID++
	return u, nil
}

type fakeListRepo struct {
	lists      map[int64]dom.ShoppingList
	items      map[int64]dom.Item
	nextListID int64
	nextItemID int64
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists:      make(map[int64]dom.ShoppingList),
		items:      make(map[int64]dom.Item),
		nextListID: 1,
		nextItemID: 1,
	}
}

func (r *fakeListRepo) Create(_ context.Context, l dom.ShoppingList) (dom.ShoppingList, error) {
	l.ID = r.nextListID
	r.nextListID++
	now := time.Now()
	l.CreatedAt, l.UpdatedAt = now, now
	r.lists[l.ID] = l
	return l, nil
}

func (r *fakeListRepo) withItems(l dom.ShoppingList) dom.ShoppingList {
	l.Items = nil
	for _, it := range r.items {
		if it.ListID == l.ID && it.DeletedAt == nil {
			l.Items = append(l.Items, it)
		}
	}
	return l
}

func (r *fakeListRepo) GetByID(_ context.Context, id int64) (dom.ShoppingList, error) {
	l, ok := r.lists[id]
	if !ok || l.DeletedAt != nil {
		return dom.ShoppingList{}, pgx.ErrNoRows
	}
	return r.withItems(l), nil
}

func (r *fakeListRepo) GetByPublicToken(_ context.Context, token string) (dom.ShoppingList, error) {
	for _, l := range r.lists {
		if l.PublicToken == token && l.IsPublic && l.DeletedAt == nil {
			return r.withItems(l), nil
		}
	}
	return dom.ShoppingList{}, pgx.ErrNoRows
}

func (r *fakeListRepo) ListForUser(_ context.Context, userID int64, email string) ([]dom.ShoppingList, error) {
	var out []dom.ShoppingList
	for _, l := range r.lists {
		if l.DeletedAt != nil {
			continue
		}
		if l.OwnerID == userID || l.SharedWithContains(email) {
			out = append(out, r.withItems(l))
		}
	}
	return out, nil
}

func (r *fakeListRepo) Update(_ context.Context, id int64, patch dom.ShoppingList) (dom.ShoppingList, error) {
	l, ok := r.lists[id]
	if !ok || l.DeletedAt != nil {
		return dom.ShoppingList{}, pgx.ErrNoRows
	}
	l.Title = patch.Title
	l.Observation = patch.Observation
	l.Date = patch.Date
	l.PlannedBudgetCents = patch.PlannedBudgetCents
	l.UpdatedAt = time.Now()
	r.lists[id] = l
	return r.withItems(l), nil
}

func (r *fakeListRepo) SoftDelete(_ context.Context, id int64) error {
	l, ok := r.lists[id]
	if !ok || l.DeletedAt != nil {
		return nil
	}
	now := time.Now()
	l.DeletedAt = &now
	r.lists[id] = l
	return nil
}

func (r *fakeListRepo) Restore(_ context.Context, ownerID, id int64) error {
	l, ok := r.lists[id]
	if !ok || l.OwnerID != ownerID || l.DeletedAt == nil {
		return pgx.ErrNoRows
	}
	l.DeletedAt = nil
	r.lists[id] = l
	return nil
}

func (r *fakeListRepo) Purge(_ context.Context, ownerID, id int64) error {
	l, ok := r.lists[id]
	if !ok || l.OwnerID != ownerID || l.DeletedAt == nil {
		return pgx.ErrNoRows
	}
	delete(r.lists, id)
	return nil
}

func (r *fakeListRepo) Trash(_ context.Context, ownerID int64) ([]dom.ShoppingList, error) {
	var out []dom.ShoppingList
	for _, l := range r.lists {
		if l.OwnerID == ownerID && l.DeletedAt != nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListRepo) SetSharing(_ context.Context, id int64, sharedWith []string) error {
	l, ok := r.lists[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.SharedWith = sharedWith
	r.lists[id] = l
	return nil
}

func (r *fakeListRepo) SetVisibility(_ context.Context, id int64, public bool, token string) error {
	l, ok := r.lists[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.IsPublic = public
	l.PublicToken = token
	r.lists[id] = l
	return nil
}

func (r *fakeListRepo) AddItem(_ context.Context, it dom.Item) (dom.Item, error) {
	it.ID = r.nextItemID
	r.nextItemID++
	now := time.Now()
	it.CreatedAt, it.UpdatedAt = now, now
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeListRepo) GetItem(_ context.Context, listID, itemID int64) (dom.Item, error) {
	it, ok := r.items[itemID]
	if !ok || it.ListID != listID || it.DeletedAt != nil {
		return dom.Item{}, pgx.ErrNoRows
	}
	return it, nil
}

func (r *fakeListRepo) UpdateItem(_ context.Context, patch dom.Item) (dom.Item, error) {
	it, ok := r.items[patch.ID]
	if !ok || it.ListID != patch.ListID || it.DeletedAt != nil {
		return dom.Item{}, pgx.ErrNoRows
	}
	patch.CreatedAt = it.CreatedAt
	patch.UpdatedAt = time.Now()
	r.items[patch.ID] = patch
	return patch, nil
}

func (r *fakeListRepo) SetChecked(_ context.Context, listID, itemID int64, checked bool) (dom.Item, error) {
	it, ok := r.items[itemID]
	if !ok || it.ListID != listID || it.DeletedAt != nil {
		return dom.Item{}, pgx.ErrNoRows
	}
	it.Checked = checked
	r.items[itemID] = it
	return it, nil
}

func (r *fakeListRepo) SoftDeleteItem(_ context.Context, listID, itemID int64) error {
	it, ok := r.items[itemID]
	if !ok || it.ListID != listID {
		return nil
	}
	now := time.Now()
	it.DeletedAt = &now
	r.items[itemID] = it
	return nil
}

func (r *fakeListRepo) ItemsForOwner(_ context.Context, ownerID int64, from, to *time.Time) ([]dom.Item, map[int64]time.Time, error) {
	dates := make(map[int64]time.Time)
	var out []dom.Item
	for _, l := range r.lists {
		if l.OwnerID != ownerID || l.DeletedAt != nil {
			continue
		}
		if from != nil && l.Date.Before(*from) {
			continue
		}
		if to != nil && l.Date.After(*to) {
			continue
		}
		for _, it := range r.items {
			if it.ListID == l.ID && it.DeletedAt == nil {
				out = append(out, it)
				dates[l.ID] = l.Date
			}
		}
	}
	return out, dates, nil
}

type fakePantryRepo struct {
	items  map[int64]dom.PantryItem
	nextID int64
}

func newFakePantryRepo() *fakePantryRepo {
	return &fakePantryRepo{items: make(map[int64]dom.PantryItem), nextID: 1}
}

func (r *fakePantryRepo) Create(_ context.Context, p dom.PantryItem) (dom.PantryItem, error) {
	p.ID = r.nextID
	r.nextID++
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.items[p.ID] = p
	return p, nil
}

func (r *fakePantryRepo) GetByID(_ context.Context, ownerID, id int64) (dom.PantryItem, error) {
	p, ok := r.items[id]
	if !ok || p.OwnerID != ownerID {
		return dom.PantryItem{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r *fakePantryRepo) ListByOwner(_ context.Context, ownerID int64) ([]dom.PantryItem, error) {
	var out []dom.PantryItem
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePantryRepo) Update(_ context.Context, patch dom.PantryItem) (dom.PantryItem, error) {
	p, ok := r.items[patch.ID]
	if !ok || p.OwnerID != patch.OwnerID {
		return dom.PantryItem{}, pgx.ErrNoRows
	}
	p.Quantity = patch.Quantity
	p.ExpiryDate = patch.ExpiryDate
	p.UpdatedAt = time.Now()
	r.items[p.ID] = p
	return p, nil
}

func (r *fakePantryRepo) Delete(_ context.Context, ownerID, id int64) error {
	p, ok := r.items[id]
	if ok && p.OwnerID == ownerID {
		delete(r.items, id)
	}
	return nil
}
