package services

import (
	"llantera/internal/catalog"
	"llantera/internal/domain"
	"llantera/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Search pushes the exact-match filters down into the store query, then
// runs the in-memory engine over the materialized rows for free-text search
// and sorting. The engine re-applies the exact filters too, which is a
// no-op on the already-narrowed rows; both paths implement the same
// contract and must agree on every input.
func (s *CatalogService) Search(q catalog.Query) ([]domain.Product, error) {
	products, err := s.Prods.List(repos.Filter{
		VehicleType: q.VehicleType,
		Size:        q.Size,
		Brand:       q.Brand,
	})
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, q), nil
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Suggest runs the suggestion lookup over the materialized catalog.
func (s *CatalogService) Suggest(query string) (catalog.Suggestions, error) {
	all, err := s.Prods.All()
	if err != nil {
		return catalog.Suggestions{}, err
	}
	return catalog.Suggest(all, query), nil
}

// Facets returns the size and brand filter options for a vehicle type.
type Facets struct {
	Sizes  []string
	Brands []string
}

func (s *CatalogService) FacetsFor(vehicleType string) (Facets, error) {
	products, err := s.Prods.List(repos.Filter{VehicleType: vehicleType})
	if err != nil {
		return Facets{}, err
	}
	return Facets{
		Sizes:  catalog.Sizes(products),
		Brands: catalog.Brands(products),
	}, nil
}
