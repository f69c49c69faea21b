package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/session"
)

// TokenSaver persists a freshly issued token
type TokenSaver interface {
	Save(token session.Token) error
}

// Login requests a token and saves it. When the server rejects the
// credentials its message goes to Err, nothing is saved and Login reports
// false with a nil error.
func (r *Runner) Login(ctx context.Context, email, password string, store TokenSaver) (bool, error) {
	token, err := r.API.Login(ctx, email, password)
	if err != nil {
		var apiErr *ituring.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Status
			}
			fmt.Fprintln(r.Err, msg)
			return false, nil
		}
		return false, fmt.Errorf("login: %w", err)
	}

	if err := store.Save(session.Token(token)); err != nil {
		return false, fmt.Errorf("save token: %w", err)
	}

	r.Log.Debug().Msg("token saved")
	return true, nil
}
