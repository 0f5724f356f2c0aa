package handlers

import (
	"llantera/internal/catalog"
	applog "llantera/internal/log"
	"llantera/internal/services"
	"llantera/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Svc *services.CatalogService
	Inv *services.InventoryService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{})
}

// Catalog renders the filterable product listing. Filter and sort values
// are best-effort refinements: unrecognized ones degrade to defaults in
// ParseQuery instead of failing the page.
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	q := catalog.ParseQuery(func(name string) string {
		if name == "search" {
			return c.Query("q")
		}
		return c.Query(name)
	})

	products, err := h.Svc.Search(q)
	if err != nil {
		applog.Error(c, "catalog.search", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please retry."})
	}

	facets, err := h.Svc.FacetsFor(q.VehicleType)
	if err != nil {
		applog.Error(c, "catalog.facets", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please retry."})
	}

	return render(c, "catalog", fiber.Map{
		"Products": products,
		"Count":    len(products),
		"Query":    q,
		"Sizes":    facets.Sizes,
		"Brands":   facets.Brands,
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Svc.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	avail, err := h.Inv.CheckAvailability(id)
	if err != nil {
		applog.Error(c, "catalog.availability", err, map[string]any{"product": id})
		avail = services.Availability{Status: "OUT_OF_STOCK"}
	}
	return render(c, "product", fiber.Map{"P": p, "Avail": avail})
}
