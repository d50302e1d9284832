package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/librarian/internal/models"
)

var (
	// ErrDuplicateID is returned when adding a record whose id is already cataloged
	ErrDuplicateID = errors.New("record already exists")

	// ErrNotFound is returned when an id is not in the catalog
	ErrNotFound = errors.New("record not found")
)

// Catalog owns every record and keeps title/author indexes over them.
// Indexes hold ids and are resolved through records on read.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	records  map[string]*models.Record
	order    []string
	byTitle  map[string][]string
	byAuthor map[string][]string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		records:  make(map[string]*models.Record),
		byTitle:  make(map[string][]string),
		byAuthor: make(map[string][]string),
	}
}

func indexKey(s string) string {
	return strings.ToLower(s)
}

// Add catalogs a new available record
func (c *Catalog) Add(id, title, author string) error {
	if _, exists := c.records[id]; exists {
		return fmt.Errorf("%w: id %s", ErrDuplicateID, id)
	}
	c.insert(models.NewRecord(id, title, author))
	return nil
}

// insert assumes the id is not present yet
func (c *Catalog) insert(r *models.Record) {
	c.records[r.ID] = r
	c.order = append(c.order, r.ID)

	titleKey := indexKey(r.Title)
	c.byTitle[titleKey] = append(c.byTitle[titleKey], r.ID)

	authorKey := indexKey(r.Author)
	c.byAuthor[authorKey] = append(c.byAuthor[authorKey], r.ID)
}

// Get returns the record with the given id
func (c *Catalog) Get(id string) (*models.Record, bool) {
	r, exists := c.records[id]
	return r, exists
}

// SearchByTitle returns records whose title matches case-insensitively, in the order they were added
func (c *Catalog) SearchByTitle(title string) []*models.Record {
	return c.resolve(c.byTitle[indexKey(title)])
}

// SearchByAuthor returns records whose author matches case-insensitively, in the order they were added
func (c *Catalog) SearchByAuthor(author string) []*models.Record {
	return c.resolve(c.byAuthor[indexKey(author)])
}

func (c *Catalog) resolve(ids []string) []*models.Record {
	if len(ids) == 0 {
		return nil
	}
	result := make([]*models.Record, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.records[id])
	}
	return result
}

// Records returns every record in insertion order
func (c *Catalog) Records() []*models.Record {
	return c.resolve(c.order)
}

// Checkout assigns the record to holderID
func (c *Catalog) Checkout(id, holderID string) error {
	r, exists := c.records[id]
	if !exists {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	if err := r.Checkout(holderID); err != nil {
		return fmt.Errorf("record %s: %w", id, err)
	}
	return nil
}

// Release marks the record as returned
func (c *Catalog) Release(id string) error {
	r, exists := c.records[id]
	if !exists {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	if err := r.Release(); err != nil {
		return fmt.Errorf("record %s: %w", id, err)
	}
	return nil
}

// Total is the number of cataloged records
func (c *Catalog) Total() int {
	return len(c.records)
}

// Held is the number of checked out records
func (c *Catalog) Held() int {
	held := 0
	for _, r := range c.records {
		if r.IsHeld() {
			held++
		}
	}
	return held
}

// Available is the number of records nobody holds
func (c *Catalog) Available() int {
	return c.Total() - c.Held()
}

// Holders maps each holder to the ids they have checked out, in insertion order
func (c *Catalog) Holders() map[string][]string {
	result := make(map[string][]string)
	for _, id := range c.order {
		r := c.records[id]
		if r.IsHeld() {
			result[r.Holder()] = append(result[r.Holder()], id)
		}
	}
	return result
}
