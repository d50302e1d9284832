package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Loader reads book rows from a file in one of the supported formats
type Loader struct {
	path string
}

// NewLoader creates a new loader for path
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load loads rows from a JSON, JSONL, YAML or Parquet file, picked by extension
func (l *Loader) Load() ([]BookRow, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl":
		return l.loadJSONL()
	case ".json":
		return l.loadJSON()
	case ".yaml", ".yml":
		return l.loadYAML()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .jsonl, .yaml, .parquet)", ext)
	}
}

// loadJSON loads a JSON array, the same shape the catalog file uses
func (l *Loader) loadJSON() ([]BookRow, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var rows []BookRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	slog.Debug("Finished reading JSON file", "path", l.path, "total_records", len(rows))
	return rows, nil
}

// loadJSONL loads one JSON object per line
func (l *Loader) loadJSONL() ([]BookRow, error) {
	slog.Debug("Opening JSONL file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var rows []BookRow
	scanner := bufio.NewScanner(file)

	// Increase buffer size for long JSON lines
	const maxCapacity = 1024 * 1024 // 1MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var row BookRow
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(rows), "total_lines", lineNum)

	return rows, nil
}

// loadYAML loads a document written by Export
func (l *Loader) loadYAML() ([]BookRow, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var doc ExportFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	slog.Debug("Finished reading YAML file", "path", l.path, "total_records", len(doc.Records))
	return doc.Records, nil
}

// loadParquet loads rows from a Parquet file
func (l *Loader) loadParquet() ([]BookRow, error) {
	slog.Debug("Opening Parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[BookRow](pf)
	defer reader.Close()

	var rows []BookRow
	batch := make([]BookRow, 128)

	for {
		n, err := reader.Read(batch)
		rows = append(rows, batch[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(rows))

	return rows, nil
}
