// Package actions implements the kit's commands on top of the API client.
// Every action writes its result to Out and diagnostics to Err.
package actions

import (
	"cmp"
	"context"
	"io"
	"iter"
	"slices"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/billmal071/ituring/internal/ituring"
)

// DefaultMaxMisses is how many consecutive missing ids end an all-books scan
const DefaultMaxMisses = 1000

// API is the part of *ituring.Client the actions use
type API interface {
	Shelf(ctx context.Context) iter.Seq2[ituring.BookItem, error]
	Favourites(ctx context.Context) iter.Seq2[ituring.BookItem, error]
	Book(ctx context.Context, id int) (*ituring.Book, error)
	Unfavourite(ctx context.Context, id int) error
	Login(ctx context.Context, email, password string) (string, error)
	HasToken() bool
	AuthorizationHeader() string
	EbookURL(encrypt string, format ituring.Format) string
	RefererURL(id int) string
	PushURL(id int, mode ituring.PushMode) string
}

// Runner carries what every action needs
type Runner struct {
	API       API
	Out       io.Writer
	Err       io.Writer
	OutputDir string
	MaxMisses int
	// Progress draws a bar on Err while book details are resolved
	Progress bool
	Log      zerolog.Logger
}

func (r *Runner) maxMisses() int {
	if r.MaxMisses <= 0 {
		return DefaultMaxMisses
	}
	return r.MaxMisses
}

func (r *Runner) outputDir() string {
	if r.OutputDir == "" {
		return "ebooks"
	}
	return r.OutputDir
}

// authorization returns the bearer header value or ErrNotAuthenticated
func (r *Runner) authorization() (string, error) {
	if !r.API.HasToken() {
		return "", ituring.ErrNotAuthenticated
	}
	return r.API.AuthorizationHeader(), nil
}

func (r *Runner) newBar(total int, description string) *progressbar.ProgressBar {
	w := io.Discard
	if r.Progress {
		w = r.Err
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func sortByID(items []ituring.BookItem) {
	slices.SortStableFunc(items, func(a, b ituring.BookItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// ids returns the item ids as a set
func ids(items []ituring.BookItem) map[int]struct{} {
	set := make(map[int]struct{}, len(items))
	for _, item := range items {
		set[item.ID] = struct{}{}
	}
	return set
}
