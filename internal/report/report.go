// Package report summarizes catalog circulation.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/lehigh-university-libraries/librarian/internal/storage"
	"gopkg.in/yaml.v3"
)

// Summary is a snapshot of catalog counts
type Summary struct {
	Total     int                 `json:"total" yaml:"total"`
	Held      int                 `json:"held" yaml:"held"`
	Available int                 `json:"available" yaml:"available"`
	Holders   map[string][]string `json:"holders,omitempty" yaml:"holders,omitempty"`
}

// Summarize takes a snapshot of c
func Summarize(c *storage.Catalog) Summary {
	return Summary{
		Total:     c.Total(),
		Held:      c.Held(),
		Available: c.Available(),
		Holders:   c.Holders(),
	}
}

// Write renders s to w as text, json or yaml
func Write(w io.Writer, s Summary, format string) error {
	switch format {
	case "text", "":
		return writeText(w, s)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, s Summary) error {
	fmt.Fprintln(w, "=== Library Report ===")
	fmt.Fprintf(w, "Total books: %d\n", s.Total)
	fmt.Fprintf(w, "Issued books: %d\n", s.Held)
	fmt.Fprintf(w, "Available books: %d\n", s.Available)

	if len(s.Holders) > 0 {
		holders := make([]string, 0, len(s.Holders))
		for h := range s.Holders {
			holders = append(holders, h)
		}
		sort.Strings(holders)

		fmt.Fprintln(w, "Holders:")
		for _, h := range holders {
			fmt.Fprintf(w, "  %s: %v\n", h, s.Holders[h])
		}
	}

	_, err := fmt.Fprintln(w, "======================")
	return err
}
