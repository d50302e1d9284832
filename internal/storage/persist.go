package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"
	"github.com/lehigh-university-libraries/librarian/internal/models"
	"github.com/tidwall/pretty"
)

// DefaultFile is where the catalog lives when no path is configured
const DefaultFile = "library_data.json"

// ErrCorruptFile is returned when a catalog file cannot be parsed
var ErrCorruptFile = errors.New("corrupt catalog file")

// no Width, so short arrays are never packed onto one line
var fileFormat = &pretty.Options{
	Indent: "    ",
}

// Persist writes every record, in insertion order, to path as indented JSON.
// The file is replaced atomically; on error the previous file is left untouched.
func (c *Catalog) Persist(path string) error {
	records := c.Records()
	if records == nil {
		records = []*models.Record{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data := pretty.PrettyOptions(buf.Bytes(), fileFormat)

	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	slog.Debug("Catalog saved", "path", path, "records", len(records), "size_bytes", len(data))
	return nil
}

// Restore loads records from path into the catalog.
// A missing file is a fresh start and not an error. When the file is corrupt,
// loading stops at the bad entry and records read before it are kept.
func (c *Catalog) Restore(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("No catalog file found, starting fresh", "path", path)
			return nil
		}
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptFile, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%w: %s: expected a JSON array", ErrCorruptFile, path)
	}

	loaded := 0
	for entry := 0; dec.More(); entry++ {
		r := new(models.Record)
		if err := dec.Decode(r); err != nil {
			return fmt.Errorf("%w: %s: entry %d: %w", ErrCorruptFile, path, entry, err)
		}

		if _, exists := c.records[r.ID]; exists {
			slog.Warn("Skipping duplicate record in catalog file", "path", path, "entry", entry, "id", r.ID)
			continue
		}

		c.insert(r)
		loaded++
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptFile, path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: unexpected data after catalog array", ErrCorruptFile, path)
	}

	slog.Info("Catalog loaded", "path", path, "records", loaded)
	return nil
}
