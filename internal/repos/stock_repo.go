package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"llantera/internal/domain"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

// Row used by the admin stock page.
type MovementRow struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	Type      string `db:"type"`
	Reason    string `db:"reason"`
	CreatedAt string `db:"created_at"`
}

// ListByProduct returns a product's movement log, newest first.
func (r *StockRepo) ListByProduct(productID string) ([]domain.StockMovement, error) {
	out := []domain.StockMovement{}
	err := r.db.Select(&out, `
		SELECT id, product_id, quantity, type, COALESCE(reason,'') AS reason, created_at
		FROM stock_movements
		WHERE product_id = ?
		ORDER BY datetime(created_at) DESC, rowid DESC
	`, productID)
	return out, err
}

// ListLatest returns recent movements with product names (for /admin/stock).
func (r *StockRepo) ListLatest(limit int) ([]MovementRow, error) {
	if limit <= 0 {
		limit = 100
	}
	out := []MovementRow{}
	err := r.db.Select(&out, `
		SELECT m.id, m.product_id, p.name, m.quantity, m.type, COALESCE(m.reason,'') AS reason, m.created_at
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY datetime(m.created_at) DESC, m.rowid DESC
		LIMIT ?
	`, limit)
	return out, err
}

// Adjust sets a product's stock to an absolute value and logs the delta as
// an ADJUST movement, atomically.
func (r *StockRepo) Adjust(productID string, newStock int, reason string) error {
	if newStock < 0 {
		return fmt.Errorf("stock must be non-negative")
	}
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var current int
	if err := tx.Get(&current, `SELECT stock FROM products WHERE id = ?`, productID); err != nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if _, err := tx.Exec(`
		UPDATE products SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, newStock, productID); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO stock_movements(id, product_id, quantity, type, reason)
		VALUES(?, ?, ?, 'ADJUST', ?)
	`, uuid.NewString(), productID, newStock-current, reason); err != nil {
		return err
	}

	return tx.Commit()
}
