package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CartRepository encapsulates cart item persistence.
type CartRepository interface {
	Insert(ctx context.Context, item *domain.CartItem) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository instantiates repository.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Insert(ctx context.Context, item *domain.CartItem) error {
	const query = `
        INSERT INTO cart_items (email, menu_item_id, name, image, price)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		item.Email,
		item.MenuItemID,
		item.Name,
		item.Image,
		item.Price,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	const query = `
        SELECT id, email, menu_item_id, name, image, price, created_at
        FROM cart_items WHERE email=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.Email,
			&item.MenuItemID,
			&item.Name,
			&item.Image,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
