package repo

import (
	"context"
	"time"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListRepo provides shopping-list and item persistence.
type ListRepo interface {
	Create(ctx context.Context, l dom.ShoppingList) (dom.ShoppingList, error)
	GetByID(ctx context.Context, id int64) (dom.ShoppingList, error)
	GetByPublicToken(ctx context.Context, token string) (dom.ShoppingList, error)
	ListForUser(ctx context.Context, userID int64, email string) ([]dom.ShoppingList, error)
	Update(ctx context.Context, id int64, patch dom.ShoppingList) (dom.ShoppingList, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, ownerID, id int64) error
	Purge(ctx context.Context, ownerID, id int64) error
	Trash(ctx context.Context, ownerID int64) ([]dom.ShoppingList, error)
	SetSharing(ctx context.Context, id int64, sharedWith []string) error
	SetVisibility(ctx context.Context, id int64, public bool, token string) error

	AddItem(ctx context.Context, it dom.Item) (dom.Item, error)
	GetItem(ctx context.Context, listID, itemID int64) (dom.Item, error)
	UpdateItem(ctx context.Context, it dom.Item) (dom.Item, error)
	SetChecked(ctx context.Context, listID, itemID int64, checked bool) (dom.Item, error)
	SoftDeleteItem(ctx context.Context, listID, itemID int64) error

	// ItemsForOwner returns live items of the owner's live lists, optionally
	// restricted to lists dated in [from, to], plus list ID to list date for
	// month grouping.
	ItemsForOwner(ctx context.Context, ownerID int64, from, to *time.Time) ([]dom.Item, map[int64]time.Time, error)
}

// PGListRepo implements ListRepo with Postgres.
type PGListRepo struct {
	db *pgxpool.Pool
}

func NewPGListRepo(db *pgxpool.Pool) *PGListRepo {
	return &PGListRepo{db: db}
}

const listColumns = `id, owner_id, title, observation, date, planned_budget_cents,
	is_public, public_token, shared_with, created_at, updated_at, deleted_at`

func scanList(row pgx.Row) (dom.ShoppingList, error) {
	var l dom.ShoppingList
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Observation, &l.Date, &l.PlannedBudgetCents,
		&l.IsPublic, &l.PublicToken, &l.SharedWith, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	return l, err
}

func (r *PGListRepo) Create(ctx context.Context, l dom.ShoppingList) (dom.ShoppingList, error) {
	query := `
		INSERT INTO lists (owner_id, title, observation, date, planned_budget_cents, public_token, shared_with)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + listColumns
	return scanList(r.db.QueryRow(ctx, query,
		l.OwnerID, l.Title, l.Observation, l.Date, l.PlannedBudgetCents, l.PublicToken, l.SharedWith,
	))
}

func (r *PGListRepo) GetByID(ctx context.Context, id int64) (dom.ShoppingList, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1 AND deleted_at IS NULL`
	l, err := scanList(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return dom.ShoppingList{}, err
	}
	l.Items, err = r.listItems(ctx, l.ID)
	return l, err
}

func (r *PGListRepo) GetByPublicToken(ctx context.Context, token string) (dom.ShoppingList, error) {
	query := `SELECT ` + listColumns + ` FROM lists
		WHERE public_token = $1 AND is_public = TRUE AND deleted_at IS NULL`
	l, err := scanList(r.db.QueryRow(ctx, query, token))
	if err != nil {
		return dom.ShoppingList{}, err
	}
	l.Items, err = r.listItems(ctx, l.ID)
	return l, err
}

// ListForUser returns live lists the user owns or collaborates on, items included.
func (r *PGListRepo) ListForUser(ctx context.Context, userID int64, email string) ([]dom.ShoppingList, error) {
	query := `SELECT ` + listColumns + ` FROM lists
		WHERE deleted_at IS NULL AND (owner_id = $1 OR $2 = ANY(shared_with))
		ORDER BY date DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, userID, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lists []dom.ShoppingList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range lists {
		items, err := r.listItems(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}
	return lists, nil
}

func (r *PGListRepo) Update(ctx context.Context, id int64, patch dom.ShoppingList) (dom.ShoppingList, error) {
	query := `
		UPDATE lists SET title = $2, observation = $3, date = $4, planned_budget_cents = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + listColumns
	return scanList(r.db.QueryRow(ctx, query,
		id, patch.Title, patch.Observation, patch.Date, patch.PlannedBudgetCents,
	))
}

func (r *PGListRepo) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE lists SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, now)
	return err
}

// Restore brings a trashed list back. Owner-scoped in SQL because the list is
// invisible to GetByID while trashed.
func (r *PGListRepo) Restore(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE lists SET deleted_at = NULL, updated_at = NOW()
		 WHERE id = $1 AND owner_id = $2 AND deleted_at IS NOT NULL`,
		id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Purge removes a trashed list and its items for good.
func (r *PGListRepo) Purge(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM lists WHERE id = $1 AND owner_id = $2 AND deleted_at IS NOT NULL`,
		id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGListRepo) Trash(ctx context.Context, ownerID int64) ([]dom.ShoppingList, error) {
	query := `SELECT ` + listColumns + ` FROM lists
		WHERE owner_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lists []dom.ShoppingList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *PGListRepo) SetSharing(ctx context.Context, id int64, sharedWith []string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE lists SET shared_with = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id, sharedWith)
	return err
}

func (r *PGListRepo) SetVisibility(ctx context.Context, id int64, public bool, token string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE lists SET is_public = $2, public_token = $3, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id, public, token)
	return err
}

const itemColumns = `id, list_id, name, category, quantity, unit, price_cents, checked,
	supermarket, expiry_date, is_recurring, created_at, updated_at, deleted_at`

func scanItem(row pgx.Row) (dom.Item, error) {
	var it dom.Item
	var category, unit string
	err := row.Scan(
		&it.ID, &it.ListID, &it.Name, &category, &it.Quantity, &unit, &it.PriceCents, &it.Checked,
		&it.Supermarket, &it.ExpiryDate, &it.IsRecurring, &it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	it.Category = dom.Category(category)
	it.Unit = dom.Unit(unit)
	return it, err
}

func (r *PGListRepo) listItems(ctx context.Context, listID int64) ([]dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE list_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []dom.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGListRepo) AddItem(ctx context.Context, it dom.Item) (dom.Item, error) {
	query := `
		INSERT INTO items (list_id, name, category, quantity, unit, price_cents, supermarket, expiry_date, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query,
		it.ListID, it.Name, it.Category.String(), it.Quantity, it.Unit.String(),
		it.PriceCents, it.Supermarket, it.ExpiryDate, it.IsRecurring,
	))
}

func (r *PGListRepo) GetItem(ctx context.Context, listID, itemID int64) (dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE id = $1 AND list_id = $2 AND deleted_at IS NULL`
	return scanItem(r.db.QueryRow(ctx, query, itemID, listID))
}

func (r *PGListRepo) UpdateItem(ctx context.Context, it dom.Item) (dom.Item, error) {
	query := `
		UPDATE items SET name = $3, category = $4, quantity = $5, unit = $6, price_cents = $7,
			supermarket = $8, expiry_date = $9, is_recurring = $10, updated_at = NOW()
		WHERE id = $1 AND list_id = $2 AND deleted_at IS NULL
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query,
		it.ID, it.ListID, it.Name, it.Category.String(), it.Quantity, it.Unit.String(),
		it.PriceCents, it.Supermarket, it.ExpiryDate, it.IsRecurring,
	))
}

func (r *PGListRepo) SetChecked(ctx context.Context, listID, itemID int64, checked bool) (dom.Item, error) {
	query := `
		UPDATE items SET checked = $3, updated_at = NOW()
		WHERE id = $1 AND list_id = $2 AND deleted_at IS NULL
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, itemID, listID, checked))
}

func (r *PGListRepo) SoftDeleteItem(ctx context.Context, listID, itemID int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE items SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND list_id = $2 AND deleted_at IS NULL`,
		itemID, listID, now)
	return err
}

func (r *PGListRepo) ItemsForOwner(ctx context.Context, ownerID int64, from, to *time.Time) ([]dom.Item, map[int64]time.Time, error) {
	query := `
		SELECT i.id, i.list_id, i.name, i.category, i.quantity, i.unit, i.price_cents, i.checked,
			i.supermarket, i.expiry_date, i.is_recurring, i.created_at, i.updated_at, i.deleted_at,
			l.date
		FROM items i
		JOIN lists l ON l.id = i.list_id
		WHERE l.owner_id = $1 AND l.deleted_at IS NULL AND i.deleted_at IS NULL
			AND ($2::date IS NULL OR l.date >= $2)
			AND ($3::date IS NULL OR l.date <= $3)
		ORDER BY l.date ASC, i.created_at ASC`
	rows, err := r.db.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var items []dom.Item
	dates := make(map[int64]time.Time)
	for rows.Next() {
		var it dom.Item
		var category, unit string
		var listDate time.Time
		if err := rows.Scan(
			&it.ID, &it.ListID, &it.Name, &category, &it.Quantity, &unit, &it.PriceCents, &it.Checked,
			&it.Supermarket, &it.ExpiryDate, &it.IsRecurring, &it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
			&listDate,
		); err != nil {
			return nil, nil, err
		}
		it.Category = dom.Category(category)
		it.Unit = dom.Unit(unit)
		items = append(items, it)
		dates[it.ListID] = listDate
	}
	return items, dates, rows.Err()
}
