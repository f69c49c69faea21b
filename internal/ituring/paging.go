package ituring

import (
	"context"
	"iter"
)

// PageQuery fetches one 1-based page of a list endpoint
type PageQuery func(ctx context.Context, page int) (*Page, error)

// Paginate walks a list endpoint from page 1 until a page reports
// isLastPage, yielding items in server order. A query error is yielded once
// and ends the sequence. Every call starts again at page 1.
func Paginate(ctx context.Context, query PageQuery) iter.Seq2[BookItem, error] {
	return func(yield func(BookItem, error) bool) {
		for page := 1; ; page++ {
			p, err := query(ctx, page)
			if err != nil {
				yield(BookItem{}, err)
				return
			}
			for _, item := range p.BookItems {
				if !yield(item, nil) {
					return
				}
			}
			if p.Pagination.IsLastPage {
				return
			}
		}
	}
}

// Collect drains a sequence, stopping at the first error
func Collect(seq iter.Seq2[BookItem, error]) ([]BookItem, error) {
	var items []BookItem
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
