package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CategorySales aggregates purchased menu items per category.
type CategorySales struct {
	Category string
	Count    int64
	Total    float64
}

// PaymentRepository encapsulates payment persistence and the statistics
// aggregations derived from it.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO payments (email, transaction_id, price, currency, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	if err := tx.QueryRow(ctx, query,
		payment.Email,
		payment.TransactionID,
		payment.Price,
		payment.Currency,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt); err != nil {
		return err
	}

	for _, menuItemID := range payment.MenuItemIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO payment_items (payment_id, menu_item_id) VALUES ($1,$2)`,
			payment.ID, menuItemID,
		); err != nil {
			return fmt.Errorf("insert payment item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	const query = `
        SELECT id, email, transaction_id, price, currency, status, created_at
        FROM payments WHERE email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Email,
			&payment.TransactionID,
			&payment.Price,
			&payment.Currency,
			&payment.Status,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(price), 0) FROM payments`).Scan(&revenue); err != nil {
		return 0, err
	}
	return revenue, nil
}

func (r *paymentRepository) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	const query = `
        SELECT m.category, COUNT(*), ROUND(SUM(m.price)::numeric, 2)
        FROM payment_items pi
        JOIN menu_items m ON m.id = pi.menu_item_id
        GROUP BY m.category
        ORDER BY m.category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]CategorySales, 0)
	for rows.Next() {
		var entry CategorySales
		if err := rows.Scan(&entry.Category, &entry.Count, &entry.Total); err != nil {
			return nil, err
		}
		sales = append(sales, entry)
	}
	return sales, rows.Err()
}
