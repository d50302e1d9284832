package cmd

import (
	"errors"
	"fmt"

	"github.com/lehigh-university-libraries/librarian/internal/menu"
	"github.com/lehigh-university-libraries/librarian/internal/models"
	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id> <title> <author>",
		Short: "Add a book to the catalog",
		Example: `  # Add a book by ISBN
  librarian add 9780441013593 "Dune" "Frank Herbert"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, title, author := args[0], args[1], args[2]
			if err := s.catalog.Add(id, title, author); err != nil {
				return err
			}
			s.dirty = true
			fmt.Fprintf(cmd.OutOrStdout(), "Added book: ISBN=%s, Title=%s, Author=%s\n", id, title, author)
			return nil
		},
	}

	return cmd
}

func newSearchCmd(s *session) *cobra.Command {
	var title string
	var author string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find books by exact title or author, ignoring case",
		Example: `  # Search by title
  librarian search --title dune

  # Search by author
  librarian search --author "george orwell"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []*models.Record
			var field string
			switch {
			case title != "":
				results, field = s.catalog.SearchByTitle(title), "title"
			case author != "":
				results, field = s.catalog.SearchByAuthor(author), "author"
			default:
				return errors.New("one of --title or --author is required")
			}

			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No books found by that %s.\n", field)
				return nil
			}
			menu.PrintRecords(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title to search for")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author to search for")
	cmd.MarkFlagsMutuallyExclusive("title", "author")

	return cmd
}

func newCheckoutCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout <id> <holder>",
		Aliases: []string{"issue"},
		Short:   "Check a book out to a holder",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, holder := args[0], args[1]
			err := s.catalog.Checkout(id, holder)
			if err != nil {
				return errors.New(menu.DescribeCheckout(id, holder, err))
			}
			s.dirty = true
			fmt.Fprintln(cmd.OutOrStdout(), menu.DescribeCheckout(id, holder, nil))
			return nil
		},
	}

	return cmd
}

func newReturnCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return <id>",
		Short: "Return a checked out book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			err := s.catalog.Release(id)
			if err != nil {
				return errors.New(menu.DescribeRelease(id, err))
			}
			s.dirty = true
			fmt.Fprintln(cmd.OutOrStdout(), menu.DescribeRelease(id, nil))
			return nil
		},
	}

	return cmd
}

func newListCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every book in the order it was added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := s.catalog.Records()
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty.")
				return nil
			}
			menu.PrintRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	return cmd
}
