package services

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"llantera/internal/importer"
	"llantera/internal/repos"
)

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}

type InventoryService struct {
	Prods *repos.ProductRepo
	Stock *repos.StockRepo
}

func NewInventoryService(prods *repos.ProductRepo, stock *repos.StockRepo) *InventoryService {
	return &InventoryService{Prods: prods, Stock: stock}
}

// CheckAvailability maps a product's stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(productID string) (Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return Availability{Status: status, Qty: p.Stock}, nil
}

// Adjust sets a product's stock and logs the ADJUST movement.
func (s *InventoryService) Adjust(productID string, newStock int, reason string) error {
	return s.Stock.Adjust(productID, newStock, reason)
}

// Import parses a supplier price list and creates a product (with its IN
// movement) per parsed line. Unparseable lines are skipped; a failed insert
// stops the import, counting the uninserted remainder as Failed so parse
// skips keep their own number.
func (s *InventoryService) Import(r io.Reader, vehicleType string) (importer.Stats, error) {
	products, stats, err := importer.Parse(r, vehicleType)
	if err != nil {
		return stats, err
	}
	created := 0
	for _, p := range products {
		p.ID = uuid.NewString()
		if err := s.Prods.Create(p); err != nil {
			stats.Imported = created
			stats.Failed = len(products) - created
			return stats, fmt.Errorf("inserting %s: %w", p.Reference, err)
		}
		created++
	}
	return stats, nil
}
