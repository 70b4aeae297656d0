package cmd

import (
	"testing"

	"github.com/etnz/balancegrid"
)

func TestSplitList(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "USD", want: []string{"USD"}},
		{in: "USD, EUR ,", want: []string{"USD", "EUR"}},
	}
	for _, tc := range testCases {
		got := splitList(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("2025-01-01", "")
	if err != nil {
		t.Fatalf("parseRange() error = %v", err)
	}
	if !r.Contains(balancegrid.MustParseDate("2030-06-15")) {
		t.Error("empty -to must leave the range unbounded above")
	}
	if r.Contains(balancegrid.MustParseDate("2024-12-31")) {
		t.Error("-from must bound the range below")
	}

	if _, err := parseRange("soon", ""); err == nil {
		t.Error("parseRange() with a bad date must fail")
	}
}
