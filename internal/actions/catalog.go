package actions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/output"
)

// AllBooks probes ids 1, 2, 3, ... and writes a CSV row for every book
// that exists. The catalog is considered exhausted after MaxMisses
// consecutive missing ids.
func (r *Runner) AllBooks(ctx context.Context) error {
	w, err := output.NewCSV(r.Out, "id", "name", "published", "flags")
	if err != nil {
		return err
	}

	limit := r.maxMisses()
	misses := 0
	for id := 1; misses < limit; id++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		book, err := r.API.Book(ctx, id)
		if errors.Is(err, ituring.ErrNotFound) {
			fmt.Fprintf(r.Err, "# ignored #%d\n", id)
			misses++
			continue
		}
		if err != nil {
			return err
		}
		misses = 0

		row := []string{
			strconv.Itoa(book.ID),
			strings.TrimSpace(book.Name),
			book.Published(),
			strings.Join(book.Flags(), ", "),
		}
		if err := w.Row(row...); err != nil {
			return err
		}
	}

	r.Log.Debug().Int("misses", misses).Msg("catalog scan finished")
	return nil
}
