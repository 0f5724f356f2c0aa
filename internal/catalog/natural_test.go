package catalog_test

import (
	"sort"
	"testing"

	"llantera/internal/catalog"
)

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"9.5R17.5", "11R22.5", true},
		{"11R22.5", "9.5R17.5", false},
		{"185/65R15", "205/55R16", true},
		{"205/55R16", "205/55R16", false},
		{"7.00R15", "7.00R15LT", true},
		{"abc", "ABD", true},
		{"02", "2", false},
		{"2", "02", false},
	}
	for _, tc := range cases {
		if got := catalog.NaturalLess(tc.a, tc.b); got != tc.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNaturalSortSizes(t *testing.T) {
	sizes := []string{"315/80R22.5", "11R22.5", "185/65R15", "9.5R17.5", "205/55R16"}
	sort.SliceStable(sizes, func(i, j int) bool { return catalog.NaturalLess(sizes[i], sizes[j]) })
	want := []string{"9.5R17.5", "11R22.5", "185/65R15", "205/55R16", "315/80R22.5"}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("got %v, want %v", sizes, want)
		}
	}
}
