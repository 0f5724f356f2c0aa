package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"llantera/internal/config"
	"llantera/internal/domain"
	"llantera/internal/http/handlers"
	"llantera/internal/repos"
	"llantera/internal/services"
)

func newAdminApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", MediaDir: "../../web/media"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	return app, userRepo
}

func TestAdminPageRequiresAdmin(t *testing.T) {
	app, userRepo := newAdminApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous: status %d, want redirect to login", resp.StatusCode)
	}

	_ = userRepo.BindSession("sid-user", "u-ana")
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-user"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin: status %d, want 403", resp.StatusCode)
	}

	_ = userRepo.BindSession("sid-admin", "u-admin")
	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: status %d, want 200", resp.StatusCode)
	}
}

func TestProductCRUDRequiresAdminSession(t *testing.T) {
	app, userRepo := newAPIApp(t)

	body := `{"name":"Aptany RP203","brand":"Aptany","size":"185/60R14","price":160000,"vehicleType":"auto","stock":4}`

	resp, err := app.Test(postJSON(t, "/api/v1/products", body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: status %d, want 401", resp.StatusCode)
	}

	_ = userRepo.BindSession("sid-user", "u-ana")
	req := postJSON(t, "/api/v1/products", body)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-user"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("non-admin create: status %d, want 401", resp.StatusCode)
	}

	_ = userRepo.BindSession("sid-admin", "u-admin")
	req = postJSON(t, "/api/v1/products", body)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin create: status %d, want 200", resp.StatusCode)
	}
	var created domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if created.ID == "" || created.Name != "Aptany RP203" {
		t.Fatalf("created = %+v", created)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/products/"+created.ID, nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin delete: status %d, want 200", resp.StatusCode)
	}
}

func TestProductCreateValidation(t *testing.T) {
	app, userRepo := newAPIApp(t)
	_ = userRepo.BindSession("sid-admin", "u-admin")

	bad := []string{
		`{"name":"","brand":"X","size":"s","price":1,"vehicleType":"auto","stock":1}`,
		`{"name":"N","brand":"X","size":"s","price":1,"vehicleType":"boat","stock":1}`,
		`{"name":"N","brand":"X","size":"s","price":-1,"vehicleType":"auto","stock":1}`,
		`{"name":"N","brand":"X","size":"s","price":1,"vehicleType":"auto","stock":-1}`,
	}
	for _, body := range bad {
		req := postJSON(t, "/api/v1/products", body)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %s: status %d, want 400", body, resp.StatusCode)
		}
	}
}
