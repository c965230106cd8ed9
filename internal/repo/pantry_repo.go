package repo

import (
	"context"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PantryRepo provides pantry-item persistence. Pantry items have no sharing
// concept: every operation is scoped to the owner.
type PantryRepo interface {
	Create(ctx context.Context, p dom.PantryItem) (dom.PantryItem, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.PantryItem, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]dom.PantryItem, error)
	Update(ctx context.Context, p dom.PantryItem) (dom.PantryItem, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// PGPantryRepo implements PantryRepo with Postgres.
type PGPantryRepo struct {
	db *pgxpool.Pool
}

func NewPGPantryRepo(db *pgxpool.Pool) *PGPantryRepo {
	return &PGPantryRepo{db: db}
}

const pantryColumns = `id, owner_id, name, category, quantity, unit, purchase_date, expiry_date, created_at, updated_at`

func scanPantry(row pgx.Row) (dom.PantryItem, error) {
	var p dom.PantryItem
	var category, unit string
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &category, &p.Quantity, &unit,
		&p.PurchaseDate, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	p.Category = dom.Category(category)
	p.Unit = dom.Unit(unit)
	return p, err
}

func (r *PGPantryRepo) Create(ctx context.Context, p dom.PantryItem) (dom.PantryItem, error) {
	query := `
		INSERT INTO pantry_items (owner_id, name, category, quantity, unit, purchase_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + pantryColumns
	return scanPantry(r.db.QueryRow(ctx, query,
		p.OwnerID, p.Name, p.Category.String(), p.Quantity, p.Unit.String(), p.PurchaseDate, p.ExpiryDate,
	))
}

func (r *PGPantryRepo) GetByID(ctx context.Context, ownerID, id int64) (dom.PantryItem, error) {
	query := `SELECT ` + pantryColumns + ` FROM pantry_items WHERE id = $1 AND owner_id = $2`
	return scanPantry(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *PGPantryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.PantryItem, error) {
	query := `SELECT ` + pantryColumns + ` FROM pantry_items
		WHERE owner_id = $1 ORDER BY expiry_date ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []dom.PantryItem
	for rows.Next() {
		p, err := scanPantry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Update adjusts quantity and expiry. PurchaseDate is immutable and is
// deliberately absent from the SET list.
func (r *PGPantryRepo) Update(ctx context.Context, p dom.PantryItem) (dom.PantryItem, error) {
	query := `
		UPDATE pantry_items SET quantity = $3, expiry_date = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + pantryColumns
	return scanPantry(r.db.QueryRow(ctx, query, p.ID, p.OwnerID, p.Quantity, p.ExpiryDate))
}

func (r *PGPantryRepo) Delete(ctx context.Context, ownerID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pantry_items WHERE id = $1 AND owner_id = $2`, id, ownerID)
	return err
}
