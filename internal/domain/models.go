package domain

// Vehicle types a tire can be sold for.
const (
	VehicleAuto  = "auto"
	VehicleTruck = "truck"
)

// Stock movement kinds. The movement log is append-only: one row per
// stock-affecting event, never updated afterwards.
const (
	MovementIn     = "IN"
	MovementSale   = "SALE"
	MovementAdjust = "ADJUST"
)

// Order statuses.
const (
	OrderCompleted = "COMPLETED"
	OrderCanceled  = "CANCELED"
)

type Product struct {
	ID          string `db:"id" json:"id"`
	Reference   string `db:"reference" json:"reference,omitempty"`
	Name        string `db:"name" json:"name"`
	Brand       string `db:"brand" json:"brand"`
	Size        string `db:"size" json:"size"` // free-text tire dimension, e.g. "205/55R16"
	Price       int64  `db:"price" json:"price"` // smallest currency unit
	VehicleType string `db:"vehicle_type" json:"vehicleType"`
	Stock       int    `db:"stock" json:"stock"`
	CreatedAt   string `db:"created_at" json:"-"`
	UpdatedAt   string `db:"updated_at" json:"-"`
}

type StockMovement struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"productId"`
	Quantity  int    `db:"quantity" json:"quantity"` // signed delta; negative for sales
	Type      string `db:"type" json:"type"`
	Reason    string `db:"reason" json:"reason"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type Order struct {
	ID        string      `db:"id" json:"id"`
	Total     int64       `db:"total" json:"total"`
	Status    string      `db:"status" json:"status"`
	CreatedAt string      `db:"created_at" json:"createdAt"`
	Items     []OrderItem `db:"-" json:"items"`
}

// OrderItem snapshots the price at the time of sale; catalog price changes
// must not rewrite historical orders.
type OrderItem struct {
	OrderID   string `db:"order_id" json:"-"`
	ProductID string `db:"product_id" json:"productId"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Price     int64  `db:"price" json:"price"`
}

// LineItem is the checkout input for one product.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}
