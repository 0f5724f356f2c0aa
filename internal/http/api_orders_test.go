package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"llantera/internal/domain"
)

func postJSON(t *testing.T, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPlaceOrderAPI(t *testing.T) {
	app, _ := newAPIApp(t)

	resp, err := app.Test(postJSON(t, "/api/v1/orders", `{
		"items": [{"productId": "west-rp28", "quantity": 2, "price": 175000}],
		"total": 350000
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if order.Status != domain.OrderCompleted || order.Total != 350000 || len(order.Items) != 1 {
		t.Errorf("order = %+v", order)
	}

	// stock reflects the sale
	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/west-rp28", nil))
	var p domain.Product
	_ = json.NewDecoder(resp.Body).Decode(&p)
	resp.Body.Close()
	if p.Stock != 13 {
		t.Errorf("stock = %d, want 13", p.Stock)
	}
}

func TestPlaceOrderAPIRejections(t *testing.T) {
	app, _ := newAPIApp(t)

	cases := []struct {
		name, body string
	}{
		{"empty items", `{"items": [], "total": 0}`},
		{"total mismatch", `{"items": [{"productId": "west-rp28", "quantity": 1, "price": 175000}], "total": 1}`},
		{"unknown product", `{"items": [{"productId": "ghost", "quantity": 1, "price": 100}], "total": 100}`},
		{"out of stock", `{"items": [{"productId": "good-maxlife", "quantity": 1, "price": 260000}], "total": 260000}`},
		{"not json", `llanta`},
	}
	for _, tc := range cases {
		resp, err := app.Test(postJSON(t, "/api/v1/orders", tc.body))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", tc.name, resp.StatusCode)
		}
	}

	// nothing was sold along the way
	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products/west-rp28", nil))
	var p domain.Product
	_ = json.NewDecoder(resp.Body).Decode(&p)
	resp.Body.Close()
	if p.Stock != 15 {
		t.Errorf("stock = %d, want untouched 15", p.Stock)
	}
}
