package catalog

import (
	"sort"

	"llantera/internal/domain"
)

// Sizes returns the distinct sizes of a collection in natural order, for
// the catalog page's size filter.
func Sizes(products []domain.Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if !seen[p.Size] {
			seen[p.Size] = true
			out = append(out, p.Size)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return NaturalLess(out[i], out[j]) })
	return out
}

// Brands returns the distinct brands of a collection, sorted.
func Brands(products []domain.Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	sort.Strings(out)
	return out
}
