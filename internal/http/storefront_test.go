package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"llantera/internal/config"
	"llantera/internal/http/handlers"
	"llantera/internal/repos"
	"llantera/internal/services"
)

func newStoreApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", MediaDir: "../../web/media"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	deps := handlers.NewDeps(db, cfg, authSvc)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/catalog", deps.CatalogHandler.Catalog)
	app.Get("/product/:id", deps.CatalogHandler.Detail)
	return app
}

func TestStorefrontPages(t *testing.T) {
	app := newStoreApp(t)

	for _, path := range []string{"/", "/catalog", "/catalog?vehicleType=truck&sort=price-desc", "/product/kumho-es31"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status %d", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestCatalogPageShowsFilteredProducts(t *testing.T) {
	app := newStoreApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog?vehicleType=truck&brand=Michelin", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	page := string(body)
	if !strings.Contains(page, "X Multi Z") {
		t.Error("filtered catalog should list the Michelin truck tire")
	}
	if strings.Contains(page, "Ecowing ES31") {
		t.Error("auto tires must not appear under the truck filter")
	}
}

func TestProductDetailNotFound(t *testing.T) {
	app := newStoreApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/no-such-tire", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status %d, want 404", resp.StatusCode)
	}
}
