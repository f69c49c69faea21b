package ituring

import (
	"context"
	"errors"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for an access token. A rejected login comes
// back as an *APIError carrying the server message.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	anon := *c
	anon.token = ""

	var resp loginResponse
	err := anon.doJSON(ctx, http.MethodPost, endpoint(c.baseURL, "Account/Token", ""),
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}

	if resp.AccessToken == "" {
		return "", errors.New("login succeeded but no access token in response")
	}
	return resp.AccessToken, nil
}
