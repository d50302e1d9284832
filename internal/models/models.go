package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrAlreadyHeld is returned when checking out a record that is already checked out
	ErrAlreadyHeld = errors.New("record is already checked out")

	// ErrNotHeld is returned when returning a record that is not checked out
	ErrNotHeld = errors.New("record was not checked out")

	// ErrEmptyHolder is returned when a checkout names no holder
	ErrEmptyHolder = errors.New("holder id must not be empty")
)

// HeldError names who holds a record a checkout was refused for.
// It matches ErrAlreadyHeld with errors.Is.
type HeldError struct {
	Holder string
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("%s by %s", ErrAlreadyHeld, e.Holder)
}

func (e *HeldError) Is(target error) bool {
	return target == ErrAlreadyHeld
}

// Record represents a single book in the catalog
type Record struct {
	ID     string
	Title  string
	Author string

	// empty means available
	holder string
}

// NewRecord creates an available record
func NewRecord(id, title, author string) *Record {
	return &Record{
		ID:     id,
		Title:  title,
		Author: author,
	}
}

// Checkout assigns the record to holderID if nobody holds it yet
func (r *Record) Checkout(holderID string) error {
	if holderID == "" {
		return ErrEmptyHolder
	}
	if r.holder != "" {
		return &HeldError{Holder: r.holder}
	}
	r.holder = holderID
	return nil
}

// Release clears the holder
func (r *Record) Release() error {
	if r.holder == "" {
		return ErrNotHeld
	}
	r.holder = ""
	return nil
}

// IsHeld reports whether the record is checked out
func (r *Record) IsHeld() bool {
	return r.holder != ""
}

// Holder returns who holds the record, or "" when it is available
func (r *Record) Holder() string {
	return r.holder
}

// Status is the human readable availability of the record
func (r *Record) Status() string {
	if r.IsHeld() {
		return "Issued to " + r.holder
	}
	return "Available"
}

// recordJSON is the on-disk shape of a Record. Pointers let us tell a
// missing field from an empty one.
type recordJSON struct {
	ID     *string `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Holder *string `json:"holder"`
}

// MarshalJSON writes the record with a null holder when it is available
func (r *Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		ID:     &r.ID,
		Title:  &r.Title,
		Author: &r.Author,
	}
	if r.holder != "" {
		holder := r.holder
		out.Holder = &holder
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON requires id, title and author; holder defaults to available
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch {
	case in.ID == nil:
		return errors.New("record is missing field \"id\"")
	case in.Title == nil:
		return errors.New("record is missing field \"title\"")
	case in.Author == nil:
		return errors.New("record is missing field \"author\"")
	}

	r.ID = *in.ID
	r.Title = *in.Title
	r.Author = *in.Author
	r.holder = ""
	if in.Holder != nil {
		r.holder = *in.Holder
	}
	return nil
}
