package ituring

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// ShelfPage fetches one page of purchased ebooks, newest first
func (c *Client) ShelfPage(ctx context.Context, page int) (*Page, error) {
	// Parameter order and the capitalised boolean match what the web app sends.
	query := fmt.Sprintf("page=%d&desc=True", page)

	var p Page
	if err := c.doJSON(ctx, http.MethodGet, endpoint(c.baseURL, "User/ShelfEBook", query), nil, &p); err != nil {
		return nil, fmt.Errorf("shelf page %d: %w", page, err)
	}
	return &p, nil
}

// FavouritesPage fetches one page of favourite books
func (c *Client) FavouritesPage(ctx context.Context, page int) (*Page, error) {
	query := fmt.Sprintf("page=%d", page)

	var p Page
	if err := c.doJSON(ctx, http.MethodGet, endpoint(c.baseURL, "User/Fav/Books", query), nil, &p); err != nil {
		return nil, fmt.Errorf("favourites page %d: %w", page, err)
	}
	return &p, nil
}

// Shelf lists every purchased ebook
func (c *Client) Shelf(ctx context.Context) iter.Seq2[BookItem, error] {
	return Paginate(ctx, c.ShelfPage)
}

// Favourites lists every favourite book
func (c *Client) Favourites(ctx context.Context) iter.Seq2[BookItem, error] {
	return Paginate(ctx, c.FavouritesPage)
}

// Book looks up a book by id. A 404 returns ErrNotFound.
func (c *Client) Book(ctx context.Context, id int) (*Book, error) {
	var b Book
	err := c.doJSON(ctx, http.MethodGet, endpoint(c.baseURL, "Book/"+strconv.Itoa(id), ""), nil, &b)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("book %d: %w", id, err)
	}
	return &b, nil
}

// Unfavourite removes a book from the favourite list
func (c *Client) Unfavourite(ctx context.Context, id int) error {
	query := url.Values{"id": {strconv.Itoa(id)}}.Encode()

	if err := c.doJSON(ctx, http.MethodPost, endpoint(c.baseURL, "Book/UnFav", query), nil, nil); err != nil {
		return fmt.Errorf("unfavourite %d: %w", id, err)
	}
	return nil
}
