package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCheckout(t *testing.T) {
	r := NewRecord("111", "Dune", "Frank Herbert")

	if r.IsHeld() {
		t.Fatal("Expected new record to be available")
	}

	if err := r.Checkout("alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if !r.IsHeld() {
		t.Error("Expected record to be held after checkout")
	}
	if r.Holder() != "alice" {
		t.Errorf("Expected holder alice, got %s", r.Holder())
	}

	err := r.Checkout("bob")
	if !errors.Is(err, ErrAlreadyHeld) {
		t.Fatalf("Expected ErrAlreadyHeld, got %v", err)
	}
	if !strings.Contains(err.Error(), "alice") {
		t.Errorf("Expected error to name current holder, got %q", err.Error())
	}
	if r.Holder() != "alice" {
		t.Errorf("Expected holder to remain alice, got %s", r.Holder())
	}
}

func TestCheckoutEmptyHolder(t *testing.T) {
	r := NewRecord("111", "Dune", "Frank Herbert")

	if err := r.Checkout(""); !errors.Is(err, ErrEmptyHolder) {
		t.Fatalf("Expected ErrEmptyHolder, got %v", err)
	}
	if r.IsHeld() {
		t.Error("Expected record to stay available")
	}
}

func TestRelease(t *testing.T) {
	r := NewRecord("111", "Dune", "Frank Herbert")

	if err := r.Release(); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("Expected ErrNotHeld on available record, got %v", err)
	}

	if err := r.Checkout("alice"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if err := r.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if r.IsHeld() {
		t.Error("Expected record to be available after release")
	}
	if err := r.Release(); !errors.Is(err, ErrNotHeld) {
		t.Errorf("Expected ErrNotHeld on second release, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	r := NewRecord("111", "Dune", "Frank Herbert")
	if r.Status() != "Available" {
		t.Errorf("Expected Available, got %s", r.Status())
	}

	_ = r.Checkout("alice")
	if r.Status() != "Issued to alice" {
		t.Errorf("Expected 'Issued to alice', got %s", r.Status())
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		holder   string
		expected string
	}{
		{
			name:     "available record has null holder",
			expected: `{"id":"111","title":"Dune","author":"Frank Herbert","holder":null}`,
		},
		{
			name:     "held record has holder",
			holder:   "alice",
			expected: `{"id":"111","title":"Dune","author":"Frank Herbert","holder":"alice"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("111", "Dune", "Frank Herbert")
			if tt.holder != "" {
				_ = r.Checkout(tt.holder)
			}

			data, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, data)
			}
		})
	}
}

func TestMarshalJSONKeepsMarkup(t *testing.T) {
	r := NewRecord("1", "Çà & <b>", "Q&A")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"id":"1","title":"Çà & <b>","author":"Q&A","holder":null}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantHolder string
	}{
		{
			name:       "held record",
			input:      `{"id":"111","title":"Dune","author":"Herbert","holder":"alice"}`,
			wantHolder: "alice",
		},
		{
			name:  "null holder",
			input: `{"id":"111","title":"Dune","author":"Herbert","holder":null}`,
		},
		{
			name:  "missing holder defaults to available",
			input: `{"id":"111","title":"Dune","author":"Herbert"}`,
		},
		{
			name:  "empty holder is available",
			input: `{"id":"111","title":"Dune","author":"Herbert","holder":""}`,
		},
		{
			name:    "missing id",
			input:   `{"title":"Dune","author":"Herbert"}`,
			wantErr: true,
		},
		{
			name:    "missing title",
			input:   `{"id":"111","author":"Herbert"}`,
			wantErr: true,
		},
		{
			name:    "missing author",
			input:   `{"id":"111","title":"Dune"}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   `{"id":111,"title":"Dune","author":"Herbert"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if r.ID != "111" || r.Title != "Dune" || r.Author != "Herbert" {
				t.Errorf("Unexpected record fields: %+v", r)
			}
			if r.Holder() != tt.wantHolder {
				t.Errorf("Expected holder %q, got %q", tt.wantHolder, r.Holder())
			}
		})
	}
}
