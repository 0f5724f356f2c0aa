// Package catalog implements the product query engine: filtering, sorting
// and search-matching over a product collection. Everything here is a pure
// function of its inputs, so the same logic can run against rows pulled
// from the store or against an in-memory slice and agree on every input.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"llantera/internal/domain"
)

// Recognized filter/sort option values. Anything else degrades to the
// default (no filter / no reorder) rather than failing the query.
const (
	VehicleAll = "all"
	BrandAll   = "all"

	SortRadialAsc = "radial-asc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type Query struct {
	VehicleType string // "all" | "auto" | "truck"; "all" or empty disables
	Size        string // exact match; empty disables
	Brand       string // exact match; "all" or empty disables
	Search      string // free-text; empty disables
	Sort        string // radial-asc | price-asc | price-desc; otherwise keep order
}

// ParseQuery builds a Query from request parameters. Unknown vehicle types
// and sort options are dropped here so every later stage only sees
// recognized values.
func ParseQuery(get func(string) string) Query {
	q := Query{
		VehicleType: strings.TrimSpace(get("vehicleType")),
		Size:        strings.TrimSpace(get("size")),
		Brand:       strings.TrimSpace(get("brand")),
		Search:      strings.TrimSpace(get("search")),
		Sort:        strings.TrimSpace(get("sort")),
	}
	if q.VehicleType != domain.VehicleAuto && q.VehicleType != domain.VehicleTruck {
		q.VehicleType = VehicleAll
	}
	switch q.Sort {
	case SortRadialAsc, SortPriceAsc, SortPriceDesc:
	default:
		q.Sort = ""
	}
	return q
}

// Apply runs the full pipeline over an in-memory collection. Stage order
// matters for nothing but the search count shown to users, yet it is kept
// identical to the store-side path: vehicle type, search, size, brand, sort.
func Apply(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.VehicleType != "" && q.VehicleType != VehicleAll && p.VehicleType != q.VehicleType {
			continue
		}
		out = append(out, p)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		kept := out[:0]
		for _, p := range out {
			if MatchesSearch(p, s) {
				kept = append(kept, p)
			}
		}
		out = kept
	}
	if q.Size != "" {
		kept := out[:0]
		for _, p := range out {
			if p.Size == q.Size {
				kept = append(kept, p)
			}
		}
		out = kept
	}
	if q.Brand != "" && q.Brand != BrandAll {
		kept := out[:0]
		for _, p := range out {
			if p.Brand == q.Brand {
				kept = append(kept, p)
			}
		}
		out = kept
	}
	Sort(out, q.Sort)
	return out
}

// MatchesSearch reports whether the case-insensitive query is a substring
// of any searchable rendering of the product: name, brand, size, reference,
// the price as a plain decimal string, or the localized vehicle-type label
// (so "auto" and "camión" both find matches).
func MatchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Size), q) ||
		strings.Contains(strings.ToLower(p.Reference), q) ||
		strings.Contains(strconv.FormatInt(p.Price, 10), q) ||
		strings.Contains(vehicleLabel(p.VehicleType), q)
}

func vehicleLabel(vt string) string {
	if vt == domain.VehicleTruck {
		return "truck camión"
	}
	return "auto automóvil"
}

// Sort orders products in place per the sort option. All sorts are stable:
// equal keys keep their pre-sort relative order. radial-asc breaks radial
// ties by name; the price sorts define no tie-break beyond stability.
func Sort(products []domain.Product, opt string) {
	switch opt {
	case SortRadialAsc:
		sort.SliceStable(products, func(i, j int) bool {
			ri, rj := Radial(products[i].Size), Radial(products[j].Size)
			if ri != rj {
				return ri < rj
			}
			return products[i].Name < products[j].Name
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}
