package ituring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned when the API answers 404
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned on 401 and 403
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotAuthenticated means no token was loaded
	ErrNotAuthenticated = errors.New("not logged in, run the login command first")
)

// APIError is a non-2xx response
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Status)
}

// Unwrap maps status codes onto the sentinel errors
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// maxErrorBody caps how much of an error body is read
const maxErrorBody = 64 << 10

// checkResponse returns nil for 2xx and an *APIError otherwise. The error
// message is taken from the JSON "message" field when there is one.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Message
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		apiErr.Message = text
	}

	return apiErr
}
