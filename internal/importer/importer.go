// Package importer parses supplier price lists (plain text, one product
// per line) into product records. The format is loose: a reference code,
// a size-and-name blob, a price in thousands and a quantity, separated by
// whitespace. Parsing is best-effort by design; lines that don't fit are
// counted and skipped, never fatal.
package importer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"llantera/internal/domain"
)

// Known brands, matched case-insensitively as substrings of the product
// text. Order matters only for overlapping names.
var brands = []string{
	"Runway", "Kumho", "Ilink", "Powertrak", "Delmax", "Gallant", "Goodyear", "GoodYear", "Westlake",
	"Nankang", "Boto", "Hifly", "Triangle", "Sportrak", "Vikrant", "Fuisaki", "Michelin",
	"Royal Black", "Dunlop", "LingLong", "Fortune", "Compasal", "Rockblade", "Aosen",
	"Laufenn", "Yokohama", "Ecovision", "Aptany", "Fullrun", "Rxquest", "Bridgestone", "Hankook",
	"Continental", "Pirelli", "Blackhawl", "ZC Rubber", "Golpartner",
}

// Stats counts what happened to each line. Parse fills Lines, Imported
// and Skipped; Failed is for callers whose insert of a parsed record
// failed, so parse skips and insert failures stay distinguishable.
type Stats struct {
	Lines    int
	Imported int
	Skipped  int
	Failed   int
}

// Parse reads a price list and returns the product records it could make
// sense of, tagged with the given vehicle type. Product IDs are left empty;
// the caller assigns them on insert.
func Parse(r io.Reader, vehicleType string) ([]domain.Product, Stats, error) {
	var (
		out []domain.Product
		st  Stats
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		st.Lines++
		if line == "" || strings.HasPrefix(line, "Referencia") {
			st.Skipped++
			continue
		}
		p, ok := parseLine(line, vehicleType)
		if !ok {
			st.Skipped++
			continue
		}
		out = append(out, p)
		st.Imported++
	}
	return out, st, sc.Err()
}

// parseLine splits one price-list line into a product. Layout:
//
//	<reference> <size> <name...> <price-in-thousands> <quantity>
func parseLine(line, vehicleType string) (domain.Product, bool) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return domain.Product{}, false
	}
	ref := parts[0]
	qty, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || qty < 0 {
		return domain.Product{}, false
	}
	raw, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil || raw < 0 {
		return domain.Product{}, false
	}

	nameParts := parts[1 : len(parts)-2]
	full := strings.Join(nameParts, " ")
	size := nameParts[0]
	name := strings.TrimSpace(strings.Replace(full, size, "", 1))
	if name == "" {
		name = full
	}

	return domain.Product{
		Reference:   ref,
		Name:        name,
		Brand:       DetectBrand(full),
		Size:        size,
		Price:       raw * 1000, // supplier lists prices in thousands
		VehicleType: vehicleType,
		Stock:       qty,
	}, true
}

// DetectBrand matches the product text against the known brand list,
// falling back to "Generic". "GoodYear" spellings are normalized.
func DetectBrand(text string) string {
	lower := strings.ToLower(text)
	for _, b := range brands {
		if strings.Contains(lower, strings.ToLower(b)) {
			if strings.EqualFold(b, "goodyear") {
				return "Goodyear"
			}
			return b
		}
	}
	return "Generic"
}
