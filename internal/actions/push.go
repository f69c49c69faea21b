package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/output"
)

// PushBooks writes a shell script that asks the site to push every
// purchased book to the registered Kindle. Nothing is pushed here.
func (r *Runner) PushBooks(ctx context.Context) error {
	auth, err := r.authorization()
	if err != nil {
		return err
	}

	shelf, err := ituring.Collect(r.API.Shelf(ctx))
	if err != nil {
		return fmt.Errorf("list shelf: %w", err)
	}

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

		err = output.WriteShell(r.Out,
			[]string{"echo", fmt.Sprintf("%05d Push book", item.ID)},
			[]string{"curl", "-H", "Authorization: " + auth, r.API.PushURL(item.ID, book.PushMode())},
			[]string{"echo"},
		)
		if err != nil {
			return err
		}
	}

	return nil
}
