package cmd

import (
	"errors"
	"log/slog"

	"github.com/lehigh-university-libraries/librarian/internal/menu"
	"github.com/spf13/cobra"
)

func newMenuCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the catalog from an interactive menu",
		Long: `Starts the interactive library menu.

Changes are written to the catalog file only when you choose "Save & Exit".
Closing input (Ctrl+D) or interrupting (Ctrl+C) leaves the file untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := menu.New(s.catalog, s.save, cmd.InOrStdin(), cmd.OutOrStdout())

			err := m.Run(cmd.Context())
			if errors.Is(err, menu.ErrInputClosed) {
				slog.Warn("Input closed, exiting without saving")
				return nil
			}
			return err
		},
	}

	return cmd
}
