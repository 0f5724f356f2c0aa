package importer_test

import (
	"strings"
	"testing"

	"llantera/internal/domain"
	"llantera/internal/importer"
)

func TestParsePriceList(t *testing.T) {
	in := strings.Join([]string{
		"Referencia Descripción Precio Cantidad",
		"",
		"A-1 185/65R15 Kumho Ecowing ES31 190 12",
		"T-7 295/80R22.5 Michelin X Multi Z 1800 10",
		"X-9 205/55R16 Desconocida 260 0",
		"corta 100 5", // fewer than four fields
		"B-2 195/65R15 GoodYear Assurance precio 4",
	}, "\n")

	products, st, err := importer.Parse(strings.NewReader(in), domain.VehicleAuto)
	if err != nil {
		t.Fatal(err)
	}
	if st.Lines != 7 || st.Imported != 3 || st.Skipped != 4 {
		t.Fatalf("stats = %+v", st)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	p := products[0]
	if p.Reference != "A-1" || p.Size != "185/65R15" || p.Name != "Kumho Ecowing ES31" {
		t.Errorf("first product = %+v", p)
	}
	if p.Brand != "Kumho" {
		t.Errorf("brand = %q", p.Brand)
	}
	if p.Price != 190000 {
		t.Errorf("price = %d, want 190000 (list value times 1000)", p.Price)
	}
	if p.Stock != 12 || p.VehicleType != domain.VehicleAuto {
		t.Errorf("stock/vehicle = %d/%q", p.Stock, p.VehicleType)
	}
	if p.ID != "" {
		t.Errorf("parser must leave IDs for the caller, got %q", p.ID)
	}

	if products[1].Brand != "Michelin" || products[1].Price != 1800000 {
		t.Errorf("second product = %+v", products[1])
	}
	if products[2].Brand != "Generic" {
		t.Errorf("unknown brand should fall back to Generic, got %q", products[2].Brand)
	}
	if products[2].Stock != 0 {
		t.Errorf("zero quantity is valid, got %d", products[2].Stock)
	}
}

func TestParseSkipsBadNumbers(t *testing.T) {
	in := strings.Join([]string{
		"A-1 185/65R15 Ecowing precio doce",
		"A-2 185/65R15 Ecowing -5 12",
		"A-3 185/65R15 Ecowing 190 -1",
	}, "\n")
	products, st, err := importer.Parse(strings.NewReader(in), domain.VehicleAuto)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 || st.Skipped != 3 {
		t.Fatalf("products=%d stats=%+v", len(products), st)
	}
}

func TestDetectBrand(t *testing.T) {
	cases := []struct {
		text, want string
	}{
		{"185/65R15 Kumho Ecowing ES31", "Kumho"},
		{"195/65R15 GOODYEAR Assurance", "Goodyear"},
		{"195/65R15 GoodYear Assurance", "Goodyear"},
		{"11R22.5 ZC Rubber WDL66", "ZC Rubber"},
		{"205/55R16 Llanta sin marca", "Generic"},
	}
	for _, tc := range cases {
		if got := importer.DetectBrand(tc.text); got != tc.want {
			t.Errorf("DetectBrand(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
