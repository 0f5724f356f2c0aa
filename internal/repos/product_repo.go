package repos

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"llantera/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Filter carries the exact-match predicates that get pushed down into the
// store query. Free-text search and size-aware sorting stay in memory (see
// internal/catalog); the two paths must agree on every input.
type Filter struct {
	VehicleType string // "all"/empty disables
	Size        string // empty disables
	Brand       string // "all"/empty disables
}

const productColumns = `id, COALESCE(reference,'') AS reference, name, brand, size,
  price, vehicle_type, stock, created_at, COALESCE(updated_at,'') AS updated_at`

// List returns products matching the pushed-down exact filters, in
// insertion order (rowid) so an unsorted query preserves store order.
func (r *ProductRepo) List(f Filter) ([]domain.Product, error) {
	q := squirrel.Select(
		"id", "COALESCE(reference,'') AS reference", "name", "brand", "size",
		"price", "vehicle_type", "stock", "created_at", "COALESCE(updated_at,'') AS updated_at",
	).From("products").OrderBy("rowid")

	if f.VehicleType != "" && f.VehicleType != "all" {
		q = q.Where(squirrel.Eq{"vehicle_type": f.VehicleType})
	}
	if f.Size != "" {
		q = q.Where(squirrel.Eq{"size": f.Size})
	}
	if f.Brand != "" && f.Brand != "all" {
		q = q.Where(squirrel.Eq{"brand": f.Brand})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building product query: %w", err)
	}
	out := []domain.Product{}
	if err := r.db.Select(&out, sql, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns the whole catalog in insertion order.
func (r *ProductRepo) All() ([]domain.Product, error) {
	return r.List(Filter{})
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return p, err
}

// Create inserts a product together with its initial IN stock movement in
// one transaction, so a product never exists without an audit trail for
// its opening stock.
func (r *ProductRepo) Create(p domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	sql, args, err := squirrel.Insert("products").
		SetMap(map[string]interface{}{
			"id":           p.ID,
			"reference":    p.Reference,
			"name":         p.Name,
			"brand":        p.Brand,
			"size":         p.Size,
			"price":        p.Price,
			"vehicle_type": p.VehicleType,
			"stock":        p.Stock,
		}).ToSql()
	if err != nil {
		return fmt.Errorf("building product insert: %w", err)
	}
	if _, err := tx.Exec(sql, args...); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO stock_movements(id, product_id, quantity, type, reason)
		VALUES(?, ?, ?, 'IN', 'Initial Creation')
	`, uuid.NewString(), p.ID, p.Stock); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ProductRepo) Update(p domain.Product) error {
	sql, args, err := squirrel.Update("products").
		SetMap(map[string]interface{}{
			"reference":    p.Reference,
			"name":         p.Name,
			"brand":        p.Brand,
			"size":         p.Size,
			"price":        p.Price,
			"vehicle_type": p.VehicleType,
			"stock":        p.Stock,
		}).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building product update: %w", err)
	}
	res, err := r.db.Exec(sql, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s not found", p.ID)
	}
	return nil
}

// Delete removes a product along with its movement log and any cart lines.
// Products referenced by an order keep their foreign key and the delete
// fails, rolling everything back.
func (r *ProductRepo) Delete(id string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var referenced int
	if err := tx.Get(&referenced, `SELECT COUNT(*) FROM order_items WHERE product_id = ?`, id); err != nil {
		return err
	}
	if referenced > 0 {
		return fmt.Errorf("product %s is referenced by existing orders", id)
	}

	if _, err := tx.Exec(`DELETE FROM stock_movements WHERE product_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE product_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s not found", id)
	}

	return tx.Commit()
}
