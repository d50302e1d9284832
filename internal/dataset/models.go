package dataset

import "github.com/lehigh-university-libraries/librarian/internal/models"

// BookRow is the flat shape of a catalog record used for import and export
type BookRow struct {
	ID     string `json:"id" yaml:"id" parquet:"id"`
	Title  string `json:"title" yaml:"title" parquet:"title"`
	Author string `json:"author" yaml:"author" parquet:"author"`
	Holder string `json:"holder,omitempty" yaml:"holder,omitempty" parquet:"holder,optional"` // Empty when available
}

// ExportFile is the document written for YAML exports
type ExportFile struct {
	Exported  string    `yaml:"exported"`
	Total     int       `yaml:"total"`
	Held      int       `yaml:"held"`
	Available int       `yaml:"available"`
	Records   []BookRow `yaml:"records"`
}

// FromRecords flattens catalog records into rows, keeping their order
func FromRecords(records []*models.Record) []BookRow {
	rows := make([]BookRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, BookRow{
			ID:     r.ID,
			Title:  r.Title,
			Author: r.Author,
			Holder: r.Holder(),
		})
	}
	return rows
}

// Valid reports whether the row can become a catalog record. Only the id is
// required, the same as for records added by hand.
func (r *BookRow) Valid() bool {
	return r.ID != ""
}
