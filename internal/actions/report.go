package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/output"
)

// Report writes the shelf and the favourites as one CSV, each block
// sorted by id.
func (r *Runner) Report(ctx context.Context) error {
	shelf, err := ituring.Collect(r.API.Shelf(ctx))
	if err != nil {
		return fmt.Errorf("list shelf: %w", err)
	}
	favourites, err := ituring.Collect(r.API.Favourites(ctx))
	if err != nil {
		return fmt.Errorf("list favourites: %w", err)
	}

	sortByID(shelf)
	sortByID(favourites)

	w, err := output.NewCSV(r.Out, "id", "name", "kind")
	if err != nil {
		return err
	}

	for _, block := range []struct {
		kind  string
		items []ituring.BookItem
	}{
		{"shelf", shelf},
		{"favourite", favourites},
	} {
		for _, item := range block.items {
			if err := w.Row(fmt.Sprintf("%05d", item.ID), strings.TrimSpace(item.Name), block.kind); err != nil {
				return err
			}
		}
	}

	return nil
}
