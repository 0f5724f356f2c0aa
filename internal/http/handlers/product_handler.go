package handlers

import (
	"llantera/internal/catalog"
	"llantera/internal/domain"
	applog "llantera/internal/log"
	"llantera/internal/repos"
	"llantera/internal/services"
	"llantera/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler serves the JSON product API: the public list/query
// endpoint plus the admin-gated CRUD.
type ProductHandler struct {
	Catalog *services.CatalogService
	Prods   *repos.ProductRepo
}

// GET /api/v1/products?vehicleType=&size=&brand=&search=&sort=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := catalog.ParseQuery(func(name string) string { return c.Query(name) })
	products, err := h.Catalog.Search(q)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error fetching products"})
	}
	return c.JSON(products)
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

type productInput struct {
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Size        string `json:"size"`
	Price       int64  `json:"price"`
	VehicleType string `json:"vehicleType"`
	Stock       int    `json:"stock"`
}

func (in productInput) validate() (domain.Product, bool) {
	name, okName := validate.Name(in.Name)
	vt, okVT := validate.VehicleType(in.VehicleType)
	if !okName || !okVT || in.Brand == "" || in.Size == "" || in.Price < 0 || in.Stock < 0 {
		return domain.Product{}, false
	}
	return domain.Product{
		Reference:   in.Reference,
		Name:        name,
		Brand:       in.Brand,
		Size:        in.Size,
		Price:       in.Price,
		VehicleType: vt,
		Stock:       in.Stock,
	}, true
}

// POST /api/v1/products (admin)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, ok := in.validate()
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product"})
	}
	p.ID = uuid.NewString()
	if err := h.Prods.Create(p); err != nil {
		applog.Error(c, "products.create", err, map[string]any{"product": p.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error creating product"})
	}
	applog.Audit(c, "products.create", map[string]any{"product": p.ID, "name": p.Name})
	created, err := h.Prods.Get(p.ID)
	if err != nil {
		return c.JSON(p)
	}
	return c.JSON(created)
}

// PUT /api/v1/products/:id (admin)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, okIn := in.validate()
	if !okIn {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product"})
	}
	p.ID = id
	if err := h.Prods.Update(p); err != nil {
		applog.Error(c, "products.update", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "error updating product"})
	}
	applog.Audit(c, "products.update", map[string]any{"product": id})
	updated, err := h.Prods.Get(id)
	if err != nil {
		return c.JSON(p)
	}
	return c.JSON(updated)
}

// DELETE /api/v1/products/:id (admin)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Prods.Delete(id); err != nil {
		applog.Error(c, "products.delete", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "error deleting product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"deleted": id})
}
