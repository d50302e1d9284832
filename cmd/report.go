package cmd

import (
	"github.com/lehigh-university-libraries/librarian/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show how many books are cataloged, issued and available",
		Example: `  # Plain text report
  librarian report

  # Machine readable report
  librarian report --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Write(cmd.OutOrStdout(), report.Summarize(s.catalog), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")

	return cmd
}
