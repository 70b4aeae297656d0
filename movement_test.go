package balancegrid

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMovement_Net(t *testing.T) {
	m := Movement{
		Debit:    decimal.NewFromInt(30),
		Credit:   decimal.NewFromInt(100),
		Currency: "USD",
	}
	if got := m.Net(); !got.Equal(USD(70)) {
		t.Errorf("Net() = %v, want 70", got)
	}
}

func TestCategories_Get_Unknown(t *testing.T) {
	c := NewCategories(Category{ID: "1", Name: "Salary"})
	if got := c.Get("1").Name; got != "Salary" {
		t.Errorf("Get(1) = %q, want Salary", got)
	}
	// Unknown ids resolve to a self-named category.
	if got := c.Get("misc"); got.Name != "misc" || got.ID != "misc" {
		t.Errorf("Get(misc) = %+v, want self-named category", got)
	}
}

func TestCategories_Visible(t *testing.T) {
	c := NewCategories(
		Category{ID: "1", Name: "Salary"},
		Category{ID: "2", Name: "Transfer"},
		Category{ID: "3", Name: "Pending"},
		Category{ID: "4", Name: "Groceries"},
		Category{ID: "5", Name: "Zoo"},
	)
	got := c.Visible([]string{"1", "2", "3", "4", "5", "1"})

	// Hidden "Transfer" dropped, duplicates collapsed, names sorted,
	// "Pending" forced second-to-last.
	want := []string{"Groceries", "Salary", "Pending", "Zoo"}
	if len(got) != len(want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Visible()[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestCategories_Hidden(t *testing.T) {
	c := NewCategories(Category{ID: "t", Name: "Transfer"})
	testCases := []struct {
		id   string
		want bool
	}{
		{id: "t", want: true},
		{id: "general", want: true}, // undeclared, self-named
		{id: "salary", want: false},
	}
	for _, tc := range testCases {
		if got := c.Hidden(tc.id); got != tc.want {
			t.Errorf("Hidden(%s) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
