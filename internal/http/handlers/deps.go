package handlers

import (
	"llantera/internal/config"
	"llantera/internal/repos"
	"llantera/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	ProductHandler *ProductHandler
	SearchHandler  *SearchHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	stockRepo := repos.NewStockRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	invSvc := services.NewInventoryService(prodRepo, stockRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, orderRepo)

	return &Deps{
		CatalogHandler: &CatalogHandler{Svc: catalogSvc, Inv: invSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Prods: prodRepo},
		SearchHandler:  &SearchHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Cart: cartSvc, Order: orderSvc, Repo: orderRepo},
		AdminHandler:   &AdminHandler{Prods: prodRepo, Inv: invSvc, Orders: orderRepo, Stock: stockRepo},
	}
}
