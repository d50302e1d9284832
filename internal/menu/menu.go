package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/librarian/internal/models"
	"github.com/lehigh-university-libraries/librarian/internal/report"
	"github.com/lehigh-university-libraries/librarian/internal/storage"
)

// ErrInputClosed is returned when input ends before the user chose to exit
var ErrInputClosed = errors.New("input closed")

const banner = `
Library Menu:
1. Add book
2. Search by title
3. Search by author
4. Issue book
5. Return book
6. Report
7. Save & Exit`

// Menu drives a catalog from line-oriented input
type Menu struct {
	catalog *storage.Catalog
	save    func() error
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a menu over c. save is called when the user picks Save & Exit.
func New(c *storage.Catalog, save func() error, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog: c,
		save:    save,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user saves and exits, input ends or ctx is done
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, banner)
		choice, err := m.prompt("Enter choice (1-7): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.add()
		case "2":
			err = m.search("title", m.catalog.SearchByTitle)
		case "3":
			err = m.search("author", m.catalog.SearchByAuthor)
		case "4":
			err = m.checkout()
		case "5":
			err = m.release()
		case "6":
			err = report.Write(m.out, report.Summarize(m.catalog), "text")
		case "7":
			if err := m.save(); err != nil {
				return err
			}
			fmt.Fprintln(m.out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please enter a number between 1 and 7.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) add() error {
	id, err := m.prompt("Enter ISBN: ")
	if err != nil {
		return err
	}
	title, err := m.prompt("Enter Title: ")
	if err != nil {
		return err
	}
	author, err := m.prompt("Enter Author: ")
	if err != nil {
		return err
	}

	if id == "" {
		fmt.Fprintln(m.out, "ISBN must not be empty.")
		return nil
	}
	if err := m.catalog.Add(id, title, author); err != nil {
		slog.Debug("Add rejected", "id", id, "err", err)
		fmt.Fprintf(m.out, "Book with ISBN %s already exists.\n", id)
		return nil
	}
	fmt.Fprintf(m.out, "Added book: ISBN=%s, Title=%s, Author=%s\n", id, title, author)
	return nil
}

func (m *Menu) search(field string, lookup func(string) []*models.Record) error {
	query, err := m.prompt(fmt.Sprintf("Enter %s to search: ", strings.ToUpper(field[:1])+field[1:]))
	if err != nil {
		return err
	}

	results := lookup(query)
	if len(results) == 0 {
		fmt.Fprintf(m.out, "No books found by that %s.\n", field)
		return nil
	}
	PrintRecords(m.out, results)
	return nil
}

func (m *Menu) checkout() error {
	id, err := m.prompt("Enter ISBN to issue: ")
	if err != nil {
		return err
	}
	holder, err := m.prompt("Enter User ID: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, DescribeCheckout(id, holder, m.catalog.Checkout(id, holder)))
	return nil
}

func (m *Menu) release() error {
	id, err := m.prompt("Enter ISBN to return: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, DescribeRelease(id, m.catalog.Release(id)))
	return nil
}

// PrintRecords lists records with their availability
func PrintRecords(w io.Writer, records []*models.Record) {
	fmt.Fprintf(w, "Found %d book(s):\n", len(records))
	for _, r := range records {
		fmt.Fprintf(w, "  ISBN: %s, Title: %s, Author: %s, Status: %s\n", r.ID, r.Title, r.Author, r.Status())
	}
}

// DescribeCheckout turns the outcome of a checkout into a message for the user
func DescribeCheckout(id, holder string, err error) string {
	var held *models.HeldError
	switch {
	case err == nil:
		return fmt.Sprintf("Issued book ISBN=%s to user %s", id, holder)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("No book with ISBN %s found.", id)
	case errors.Is(err, models.ErrEmptyHolder):
		return "User ID must not be empty."
	case errors.As(err, &held):
		return fmt.Sprintf("Book ISBN=%s is already issued to %s", id, held.Holder)
	default:
		return err.Error()
	}
}

// DescribeRelease turns the outcome of a return into a message for the user
func DescribeRelease(id string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Book ISBN=%s has been returned.", id)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("No book with ISBN %s found.", id)
	case errors.Is(err, models.ErrNotHeld):
		return fmt.Sprintf("Book ISBN=%s was not issued.", id)
	default:
		return err.Error()
	}
}
