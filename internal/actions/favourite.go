package actions

import (
	"context"
	"fmt"
	"slices"

	"github.com/billmal071/ituring/internal/ituring"
)

// CleanFavourite unfavourites every book that is already on the shelf
func (r *Runner) CleanFavourite(ctx context.Context) error {
	shelf, err := ituring.Collect(r.API.Shelf(ctx))
	if err != nil {
		return fmt.Errorf("list shelf: %w", err)
	}
	favourites, err := ituring.Collect(r.API.Favourites(ctx))
	if err != nil {
		return fmt.Errorf("list favourites: %w", err)
	}

	owned := ids(shelf)
	var purchased []int
	for id := range ids(favourites) {
		if _, ok := owned[id]; ok {
			purchased = append(purchased, id)
		}
	}
	slices.Sort(purchased)

	for _, id := range purchased {
		if err := r.API.Unfavourite(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Unfavourite purchased book: %d\n", id)
	}

	return nil
}
