package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/librarian/internal/storage"
	"github.com/spf13/cobra"
)

// session is the catalog one command invocation works on
type session struct {
	file    string
	verbose bool

	catalog *storage.Catalog
	dirty   bool
}

// catalogFile resolves the catalog path: flag, then LIBRARIAN_FILE, then the default
func (s *session) catalogFile() string {
	if s.file != "" {
		return s.file
	}
	if env := os.Getenv("LIBRARIAN_FILE"); env != "" {
		return env
	}
	return storage.DefaultFile
}

// open loads the catalog. A corrupt file is logged and whatever was read
// before the fault is kept, so the command still runs.
func (s *session) open() {
	s.catalog = storage.New()
	path := s.catalogFile()
	if err := s.catalog.Restore(path); err != nil {
		slog.Error("Error loading catalog, continuing with recovered records", "path", path, "records", s.catalog.Total(), "err", err)
	}
}

// save writes the catalog back to disk
func (s *session) save() error {
	path := s.catalogFile()
	if err := s.catalog.Persist(path); err != nil {
		return err
	}
	s.dirty = false
	slog.Info("Catalog saved", "path", path, "records", s.catalog.Total())
	return nil
}

func NewRootCmd() *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:   "librarian",
		Short: "Book catalog with checkout tracking",
		Long: `Librarian keeps a catalog of books, indexed by title and author, and tracks
who has each book checked out.

The catalog is stored as an indented JSON file. Every command loads it first,
and commands that change it save it when they finish.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			logLevel := slog.LevelInfo
			if s.verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)

			s.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !s.dirty {
				return nil
			}
			return s.save()
		},
	}

	cmd.PersistentFlags().StringVarP(&s.file, "file", "f", "", "Catalog file (default $LIBRARIAN_FILE or "+storage.DefaultFile+")")
	cmd.PersistentFlags().BoolVar(&s.verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(newAddCmd(s))
	cmd.AddCommand(newSearchCmd(s))
	cmd.AddCommand(newCheckoutCmd(s))
	cmd.AddCommand(newReturnCmd(s))
	cmd.AddCommand(newListCmd(s))
	cmd.AddCommand(newReportCmd(s))
	cmd.AddCommand(newMenuCmd(s))
	cmd.AddCommand(newImportCmd(s))
	cmd.AddCommand(newExportCmd(s))

	return cmd
}
