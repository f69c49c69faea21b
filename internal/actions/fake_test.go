package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/session"
)

// fakeAPI serves canned data and records the calls that mutate state
type fakeAPI struct {
	token      string
	shelf      []ituring.BookItem
	favourites []ituring.BookItem
	books      map[int]*ituring.Book
	// bookErr is returned for ids missing from books instead of ErrNotFound
	bookErr error
	listErr error

	loginToken string
	loginErr   error

	requested   []int
	unfavourite []int
}

func (f *fakeAPI) list(items []ituring.BookItem) iter.Seq2[ituring.BookItem, error] {
	return func(yield func(ituring.BookItem, error) bool) {
		if f.listErr != nil {
			yield(ituring.BookItem{}, f.listErr)
			return
		}
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (f *fakeAPI) Shelf(context.Context) iter.Seq2[ituring.BookItem, error] {
	return f.list(f.shelf)
}

func (f *fakeAPI) Favourites(context.Context) iter.Seq2[ituring.BookItem, error] {
	return f.list(f.favourites)
}

func (f *fakeAPI) Book(_ context.Context, id int) (*ituring.Book, error) {
	f.requested = append(f.requested, id)
	if b, ok := f.books[id]; ok {
		return b, nil
	}
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return nil, ituring.ErrNotFound
}

func (f *fakeAPI) Unfavourite(_ context.Context, id int) error {
	f.unfavourite = append(f.unfavourite, id)
	return nil
}

func (f *fakeAPI) Login(context.Context, string, string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) HasToken() bool {
	return f.token != ""
}

func (f *fakeAPI) AuthorizationHeader() string {
	if f.token == "" {
		return ""
	}
	return "Bearer " + f.token
}

func (f *fakeAPI) EbookURL(encrypt string, format ituring.Format) string {
	return fmt.Sprintf("http://files/ebook/%s?type=%s", encrypt, format)
}

func (f *fakeAPI) RefererURL(id int) string {
	return fmt.Sprintf("http://www/book/%d", id)
}

func (f *fakeAPI) PushURL(id int, mode ituring.PushMode) string {
	return fmt.Sprintf("http://www/api/Kindle/%s/%d", mode, id)
}

func newRunner(api *fakeAPI) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Runner{API: api, Out: &out, Err: &errOut}, &out, &errOut
}

func items(ids ...int) []ituring.BookItem {
	var list []ituring.BookItem
	for _, id := range ids {
		list = append(list, ituring.BookItem{ID: id, Name: fmt.Sprintf(" Book %d ", id)})
	}
	return list
}

type memStore struct {
	saved []session.Token
	err   error
}

func (m *memStore) Save(token session.Token) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, token)
	return nil
}

var errBoom = errors.New("boom")
