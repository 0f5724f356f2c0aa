package catalog

import (
	"sort"
	"strings"

	"llantera/internal/domain"
)

// Suggestion limits. The scan cap keeps the lookup cheap on large catalogs;
// results are explicitly not exhaustive beyond the first 50 matches.
const (
	suggestScanCap = 50
	suggestPerKind = 5
)

type Suggestions struct {
	References []string `json:"references"`
	Names      []string `json:"names"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
}

// Suggest returns up to 5 distinct values per category drawn from products
// whose corresponding field contains the query (case-insensitive), scanning
// at most the first 50 matching products. Sizes come back in natural order;
// the other categories keep discovery order. A blank query yields all-empty
// lists.
func Suggest(products []domain.Product, query string) Suggestions {
	out := Suggestions{
		References: []string{},
		Names:      []string{},
		Brands:     []string{},
		Sizes:      []string{},
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}

	seenRef := map[string]bool{}
	seenName := map[string]bool{}
	seenBrand := map[string]bool{}
	seenSize := map[string]bool{}

	scanned := 0
	for _, p := range products {
		mRef := p.Reference != "" && strings.Contains(strings.ToLower(p.Reference), q)
		mName := strings.Contains(strings.ToLower(p.Name), q)
		mBrand := strings.Contains(strings.ToLower(p.Brand), q)
		mSize := strings.Contains(strings.ToLower(p.Size), q)
		if !mRef && !mName && !mBrand && !mSize {
			continue
		}
		scanned++
		if scanned > suggestScanCap {
			break
		}
		if mRef && !seenRef[p.Reference] {
			seenRef[p.Reference] = true
			out.References = append(out.References, p.Reference)
		}
		if mName && !seenName[p.Name] {
			seenName[p.Name] = true
			out.Names = append(out.Names, p.Name)
		}
		if mBrand && !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			out.Brands = append(out.Brands, p.Brand)
		}
		if mSize && !seenSize[p.Size] {
			seenSize[p.Size] = true
			out.Sizes = append(out.Sizes, p.Size)
		}
	}

	out.References = capKind(out.References)
	out.Names = capKind(out.Names)
	out.Brands = capKind(out.Brands)
	out.Sizes = capKind(out.Sizes)
	sort.SliceStable(out.Sizes, func(i, j int) bool {
		return NaturalLess(out.Sizes[i], out.Sizes[j])
	})
	return out
}

func capKind(vals []string) []string {
	if len(vals) > suggestPerKind {
		return vals[:suggestPerKind]
	}
	return vals
}
