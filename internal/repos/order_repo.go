package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"llantera/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Place runs the order placement transaction: one COMPLETED order with its
// line items, a stock decrement per line, and a SALE movement per line
// referencing the new order. All of it commits or none of it does.
//
// The decrement is conditional on stock >= quantity, so two concurrent
// orders cannot drive stock negative; the loser fails and rolls back.
func (r *OrderRepo) Place(items []domain.LineItem, total int64) (domain.Order, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	orderID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO orders(id, total, status, created_at)
		VALUES(?, ?, 'COMPLETED', CURRENT_TIMESTAMP)
	`, orderID, total); err != nil {
		return domain.Order{}, err
	}

	for _, it := range items {
		if _, err := tx.Exec(`
			INSERT INTO order_items(id, order_id, product_id, quantity, price)
			VALUES(?, ?, ?, ?, ?)
		`, uuid.NewString(), orderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return domain.Order{}, err
		}

		res, err := tx.Exec(`
			UPDATE products
			SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND stock >= ?
		`, it.Quantity, it.ProductID, it.Quantity)
		if err != nil {
			return domain.Order{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			var have int
			if err := tx.Get(&have, `SELECT stock FROM products WHERE id = ?`, it.ProductID); err != nil {
				if err == sql.ErrNoRows {
					return domain.Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
				}
				return domain.Order{}, err
			}
			return domain.Order{}, fmt.Errorf("%w: %s (need %d, have %d)",
				ErrInsufficientStock, it.ProductID, it.Quantity, have)
		}

		if _, err := tx.Exec(`
			INSERT INTO stock_movements(id, product_id, quantity, type, reason)
			VALUES(?, ?, ?, 'SALE', ?)
		`, uuid.NewString(), it.ProductID, -it.Quantity, "Order "+orderID); err != nil {
			return domain.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}
	return r.Get(orderID)
}

// Get returns an order with its line items.
func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, total, status, created_at FROM orders WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, err
	}

	items := []domain.OrderItem{}
	if err := r.db.Select(&items, `
		SELECT order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY rowid
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

type OrderSummary struct {
	ID        string `db:"id"`
	Total     int64  `db:"total"`
	Status    string `db:"status"`
	CreatedAt string `db:"created_at"`
	ItemCount int    `db:"item_count"`
}

// ListLatest returns recent orders for the admin panel.
func (r *OrderRepo) ListLatest(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	out := []OrderSummary{}
	err := r.db.Select(&out, `
		SELECT o.id, o.total, o.status, o.created_at,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o
		ORDER BY datetime(o.created_at) DESC, o.rowid DESC
		LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
