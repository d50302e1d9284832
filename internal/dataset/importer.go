package dataset

import (
	"errors"
	"log/slog"

	"github.com/lehigh-university-libraries/librarian/internal/storage"
)

// Cataloger is the part of the catalog an import writes through
type Cataloger interface {
	Add(id, title, author string) error
	Checkout(id, holderID string) error
}

// ImportResult summarizes what an import did
type ImportResult struct {
	Added      int `json:"added" yaml:"added"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Invalid    int `json:"invalid" yaml:"invalid"`
	Held       int `json:"held" yaml:"held"`
}

// Import adds every valid row to c. Rows whose id is already cataloged are
// skipped and counted; held rows are checked out to their holder.
func Import(c Cataloger, rows []BookRow) (ImportResult, error) {
	var result ImportResult

	for i, row := range rows {
		if !row.Valid() {
			slog.Warn("Skipping incomplete row", "row", i, "id", row.ID)
			result.Invalid++
			continue
		}

		if err := c.Add(row.ID, row.Title, row.Author); err != nil {
			if errors.Is(err, storage.ErrDuplicateID) {
				slog.Debug("Skipping duplicate row", "row", i, "id", row.ID)
				result.Duplicates++
				continue
			}
			return result, err
		}
		result.Added++

		if row.Holder == "" {
			continue
		}
		if err := c.Checkout(row.ID, row.Holder); err != nil {
			return result, err
		}
		result.Held++
	}

	slog.Info("Import finished",
		"added", result.Added,
		"duplicates", result.Duplicates,
		"invalid", result.Invalid,
		"held", result.Held)

	return result, nil
}
