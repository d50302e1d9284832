package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/librarian/internal/models"
)

func ids(records []*models.Record) []string {
	var result []string
	for _, r := range records {
		result = append(result, r.ID)
	}
	return result
}

func TestAdd(t *testing.T) {
	c := New()

	books := [][3]string{
		{"111", "Dune", "Frank Herbert"},
		{"222", "1984", "George Orwell"},
		{"333", "Animal Farm", "George Orwell"},
	}
	for i, b := range books {
		if err := c.Add(b[0], b[1], b[2]); err != nil {
			t.Fatalf("Add %s failed: %v", b[0], err)
		}
		if c.Total() != i+1 {
			t.Errorf("Expected total %d, got %d", i+1, c.Total())
		}
	}

	err := c.Add("111", "Other", "Someone")
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
	if c.Total() != 3 {
		t.Errorf("Expected total to stay 3, got %d", c.Total())
	}
	if got := c.SearchByTitle("other"); len(got) != 0 {
		t.Errorf("Expected rejected add to leave indexes alone, got %v", ids(got))
	}

	r, ok := c.Get("111")
	if !ok || r.Title != "Dune" {
		t.Errorf("Expected original record to survive duplicate add, got %+v", r)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	c := New()
	if err := c.Add("111", "Dune", "Frank Herbert"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tests := []struct {
		name   string
		search func(string) []*models.Record
		query  string
		want   []string
	}{
		{name: "title lowercase", search: c.SearchByTitle, query: "dune", want: []string{"111"}},
		{name: "title uppercase", search: c.SearchByTitle, query: "DUNE", want: []string{"111"}},
		{name: "title original case", search: c.SearchByTitle, query: "Dune", want: []string{"111"}},
		{name: "title partial does not match", search: c.SearchByTitle, query: "dun", want: nil},
		{name: "author mixed case", search: c.SearchByAuthor, query: "fRaNk HeRbErT", want: []string{"111"}},
		{name: "unknown author", search: c.SearchByAuthor, query: "orwell", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.search(tt.query))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchInsertionOrder(t *testing.T) {
	c := New()
	_ = c.Add("3", "Animal Farm", "George Orwell")
	_ = c.Add("1", "1984", "George Orwell")
	_ = c.Add("2", "Homage to Catalonia", "george orwell")

	got := ids(c.SearchByAuthor("George Orwell"))
	want := []string{"3", "1", "2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = ids(c.Records())
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected Records in insertion order %v, got %v", want, got)
	}
}

func TestSearchReturnsLiveRecords(t *testing.T) {
	c := New()
	_ = c.Add("111", "Dune", "Frank Herbert")

	found := c.SearchByTitle("dune")
	if err := c.Checkout("111", "alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if !found[0].IsHeld() {
		t.Error("Expected search result to reflect checkout made afterwards")
	}
}

func TestCheckoutAndRelease(t *testing.T) {
	c := New()
	_ = c.Add("111", "Dune", "Frank Herbert")

	if err := c.Checkout("111", "alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	r, _ := c.Get("111")
	if !r.IsHeld() {
		t.Fatal("Expected record to be held")
	}

	err := c.Checkout("111", "bob")
	if !errors.Is(err, models.ErrAlreadyHeld) {
		t.Fatalf("Expected ErrAlreadyHeld, got %v", err)
	}
	if !strings.Contains(err.Error(), "alice") {
		t.Errorf("Expected diagnostic to name alice, got %q", err.Error())
	}
	if r.Holder() != "alice" {
		t.Errorf("Expected holder to remain alice, got %s", r.Holder())
	}

	if err := c.Release("111"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if r.IsHeld() {
		t.Error("Expected record to be available after release")
	}
	if err := c.Release("111"); !errors.Is(err, models.ErrNotHeld) {
		t.Errorf("Expected ErrNotHeld, got %v", err)
	}
}

func TestCheckoutNotFound(t *testing.T) {
	c := New()

	if err := c.Checkout("999", "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from Checkout, got %v", err)
	}
	if err := c.Release("999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from Release, got %v", err)
	}
}

func TestCheckoutEmptyHolder(t *testing.T) {
	c := New()
	_ = c.Add("111", "Dune", "Frank Herbert")

	if err := c.Checkout("111", ""); !errors.Is(err, models.ErrEmptyHolder) {
		t.Errorf("Expected ErrEmptyHolder, got %v", err)
	}
	if c.Held() != 0 {
		t.Errorf("Expected no held records, got %d", c.Held())
	}
}

func TestCounts(t *testing.T) {
	c := New()
	_ = c.Add("111", "Dune", "Herbert")
	_ = c.Add("222", "1984", "Orwell")

	if err := c.Checkout("111", "alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if c.Total() != 2 {
		t.Errorf("Expected total 2, got %d", c.Total())
	}
	if c.Held() != 1 {
		t.Errorf("Expected held 1, got %d", c.Held())
	}
	if c.Available() != 1 {
		t.Errorf("Expected available 1, got %d", c.Available())
	}

	found := c.SearchByAuthor("orwell")
	if len(found) != 1 || found[0].ID != "222" {
		t.Errorf("Expected [222], got %v", ids(found))
	}
}

func TestHolders(t *testing.T) {
	c := New()
	_ = c.Add("1", "Dune", "Herbert")
	_ = c.Add("2", "1984", "Orwell")
	_ = c.Add("3", "Emma", "Austen")
	_ = c.Checkout("3", "alice")
	_ = c.Checkout("1", "alice")
	_ = c.Checkout("2", "bob")

	holders := c.Holders()
	if len(holders) != 2 {
		t.Fatalf("Expected 2 holders, got %d", len(holders))
	}
	if got := strings.Join(holders["alice"], ","); got != "1,3" {
		t.Errorf("Expected alice to hold 1,3, got %s", got)
	}
	if got := strings.Join(holders["bob"], ","); got != "2" {
		t.Errorf("Expected bob to hold 2, got %s", got)
	}
}
