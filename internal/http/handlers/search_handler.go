package handlers

import (
	"strings"

	"llantera/internal/catalog"
	applog "llantera/internal/log"
	"llantera/internal/services"
	"llantera/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// Suggest answers the typeahead lookup: GET /api/v1/products/suggest?q=...
// A blank query returns empty lists, not an error.
func (h *SearchHandler) Suggest(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return c.JSON(catalog.Suggestions{
			References: []string{},
			Names:      []string{},
			Brands:     []string{},
			Sizes:      []string{},
		})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}

	sugg, err := h.Catalog.Suggest(q)
	if err != nil {
		applog.Error(c, "suggest.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch suggestions"})
	}
	return c.JSON(sugg)
}
