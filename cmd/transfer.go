package cmd

import (
	"fmt"
	"os"

	"github.com/lehigh-university-libraries/librarian/internal/dataset"
	"github.com/spf13/cobra"
)

func newImportCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Add books from a JSON, JSONL, YAML or Parquet file",
		Long: `Adds every book in the given file to the catalog. The format is picked by
file extension. Books whose id is already cataloged are skipped, and books
carrying a holder are checked out to that holder.`,
		Example: `  # Merge another catalog file
  librarian import old_library_data.json

  # Bulk load from a Parquet export
  librarian import books.parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", path)
			}

			rows, err := dataset.NewLoader(path).Load()
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			result, err := dataset.Import(s.catalog, rows)
			if err != nil {
				return fmt.Errorf("import stopped, catalog not saved: %w", err)
			}
			s.dirty = result.Added > 0

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d book(s) (%d already cataloged, %d incomplete, %d checked out)\n",
				result.Added, result.Duplicates, result.Invalid, result.Held)
			return nil
		},
	}

	return cmd
}

func newExportCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the catalog to a JSON, JSONL, YAML or Parquet file",
		Example: `  # Snapshot as YAML
  librarian export catalog.yaml

  # Columnar export for analysis
  librarian export catalog.parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := dataset.FromRecords(s.catalog.Records())
			if err := dataset.Export(args[0], rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d book(s) to %s\n", len(rows), args[0])
			return nil
		},
	}

	return cmd
}
