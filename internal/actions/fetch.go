package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/output"
)

// Fetch writes an aria2c input file with one block per downloadable
// format of every purchased book.
func (r *Runner) Fetch(ctx context.Context) error {
	auth, err := r.authorization()
	if err != nil {
		return err
	}

	shelf, err := ituring.Collect(r.API.Shelf(ctx))
	if err != nil {
		return fmt.Errorf("list shelf: %w", err)
	}
	sortByID(shelf)

	bar := r.newBar(len(shelf), "Resolving books")
	defer bar.Finish()

	for _, item := range shelf {
		book, err := r.API.Book(ctx, item.ID)
		bar.Add(1)
		if errors.Is(err, ituring.ErrNotFound) {
			fmt.Fprintf(r.Err, "# skipped #%d: book not found\n", item.ID)
			continue
		}
		if err != nil {
			return err
		}

		for _, format := range book.Formats() {
			d := output.Directive{
				URL: r.API.EbookURL(book.Encrypt, format),
				Headers: []string{
					"Authorization: " + auth,
					"Referer: " + r.API.RefererURL(item.ID),
				},
				Out: output.DownloadPath(r.outputDir(), item.ID, book.Name, format.Ext()),
			}
			if err := output.WriteDirective(r.Out, d); err != nil {
				return err
			}
		}
	}

	return nil
}
