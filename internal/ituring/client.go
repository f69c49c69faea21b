// Package ituring is a client for the private JSON API behind ituring.com.cn.
package ituring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Client. The zero value of every field except the
// URLs is usable.
type Options struct {
	BaseURL    string
	LegacyURL  string
	FileURL    string
	RefererURL string
	Token      string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the API. It is immutable once built.
type Client struct {
	baseURL    *url.URL
	legacyURL  *url.URL
	fileURL    string
	refererURL string
	token      string
	userAgent  string
	http       *http.Client
	log        zerolog.Logger
}

// NewClient creates a new API client
func NewClient(opts Options) (*Client, error) {
	base, err := parseBase(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	legacy, err := parseBase(opts.LegacyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid legacy URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:    base,
		legacyURL:  legacy,
		fileURL:    opts.FileURL,
		refererURL: opts.RefererURL,
		token:      opts.Token,
		userAgent:  opts.UserAgent,
		http:       httpClient,
		log:        opts.Logger,
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not absolute", raw)
	}
	return u, nil
}

// HasToken reports whether requests carry a bearer token
func (c *Client) HasToken() bool {
	return c.token != ""
}

// AuthorizationHeader returns the Authorization header value, or "" when
// no token is loaded.
func (c *Client) AuthorizationHeader() string {
	if c.token == "" {
		return ""
	}
	return "Bearer " + c.token
}

// endpoint resolves path against base and attaches an encoded query
func endpoint(base *url.URL, path string, rawQuery string) *url.URL {
	u := base.ResolveReference(&url.URL{Path: path})
	u.RawQuery = rawQuery
	return u
}

// doJSON sends a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method string, u *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if auth := c.AuthorizationHeader(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", u.Path).
		Str("query", u.RawQuery).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if err := checkResponse(resp); err != nil {
		return err
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u.Path, err)
	}
	return nil
}

// EbookURL returns the file link for one format of a book
func (c *Client) EbookURL(encrypt string, format Format) string {
	return fmt.Sprintf("%s%s?type=%s", c.fileURL, encrypt, format)
}

// RefererURL returns the book page URL sent as Referer with downloads
func (c *Client) RefererURL(id int) string {
	return c.refererURL + strconv.Itoa(id)
}

// PushURL returns the Kindle push endpoint for a book
func (c *Client) PushURL(id int, mode PushMode) string {
	return endpoint(c.legacyURL, fmt.Sprintf("Kindle/%s/%d", mode, id), "").String()
}
