package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/parquet-go/parquet-go"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// Export writes rows to path in the format matching its extension
func Export(path string, rows []BookRow) error {
	ext := strings.ToLower(filepath.Ext(path))

	var err error
	switch ext {
	case ".json":
		err = exportJSON(path, rows)
	case ".jsonl":
		err = exportJSONL(path, rows)
	case ".yaml", ".yml":
		err = exportYAML(path, rows)
	case ".parquet":
		err = exportParquet(path, rows)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .json, .jsonl, .yaml, .parquet)", ext)
	}
	if err != nil {
		return err
	}

	slog.Info("Exported catalog", "path", path, "format", ext, "records", len(rows))
	return nil
}

func exportJSON(path string, rows []BookRow) error {
	if rows == nil {
		rows = []BookRow{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := renameio.WriteFile(path, pretty.Pretty(buf.Bytes()), 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

func exportJSONL(path string, rows []BookRow) error {
	file, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("failed to create JSONL file: %w", err)
	}
	defer file.Cleanup()

	w := bufio.NewWriter(file)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for i := range rows {
		if err := encoder.Encode(&rows[i]); err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write JSONL file: %w", err)
	}

	if err := file.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to write JSONL file: %w", err)
	}
	return nil
}

func exportYAML(path string, rows []BookRow) error {
	doc := ExportFile{
		Exported: time.Now().Format("2006-01-02_15-04-05"),
		Total:    len(rows),
		Records:  rows,
	}
	for _, r := range rows {
		if r.Holder != "" {
			doc.Held++
		}
	}
	doc.Available = doc.Total - doc.Held

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}

func exportParquet(path string, rows []BookRow) error {
	file, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Cleanup()

	writer := parquet.NewGenericWriter[BookRow](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}

	if err := file.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}
	return nil
}

