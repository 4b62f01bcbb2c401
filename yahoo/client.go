// Package yahoo is the Yahoo Fantasy Sports API client. It fetches wire
// format JSON and hands it to the model parsers; every method takes a
// context and returns parsed domain entities.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cd1zz/yahoo-ffb-api/wire"
)

const YahooURL = "https://fantasysports.yahooapis.com"

// StatusError is a non-200 response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code from yahoo: %d", e.Code)
}

// IsRateLimited reports whether err is Yahoo throttling (999 is Yahoo's
// historical rate-limit status).
func IsRateLimited(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == 999 || se.Code == http.StatusTooManyRequests
}

// IsUnauthorized reports whether err means the token was rejected.
func IsUnauthorized(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden
}

type Client struct {
	url       string
	http      *http.Client
	userAgent string
}

// New builds a client for the real API. httpClient must already inject
// OAuth credentials (see the auth package).
func New(httpClient *http.Client, userAgent string) *Client {
	return &Client{url: YahooURL, http: httpClient, userAgent: userAgent}
}

// NewForTest builds a client against a fake server.
func NewForTest(url string, httpClient *http.Client) *Client {
	return &Client{url: url, http: httpClient}
}

// request fetches a fantasy/v2 path and returns the decoded fantasy_content
// node. The format=json parameter is appended for paths without their own
// query; paths already using matrix parameters pass through unchanged.
func (c *Client) request(ctx context.Context, path string, args ...any) (any, error) {
	p := fmt.Sprintf(path, args...)
	url := fmt.Sprintf("%s/fantasy/v2%s?format=json", c.url, p)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error parsing response from yahoo: %w", err)
	}

	fc := wire.Get(raw, "fantasy_content")
	if fc == nil {
		return nil, wire.Malformed("fantasy_content", "no fantasy_content root")
	}
	return fc, nil
}

// leagueNode pulls the league array out of fantasy_content, tolerating the
// bare-object form the API sometimes uses.
func leagueNode(fc any) ([]any, error) {
	node := wire.Get(fc, "league")
	if node == nil {
		return nil, wire.Malformed("league", "no league node")
	}
	return wire.List(node), nil
}

// teamNode pulls the team array out of fantasy_content.
func teamNode(fc any) ([]any, error) {
	node := wire.Get(fc, "team")
	if node == nil {
		return nil, wire.Malformed("team", "no team node")
	}
	return wire.List(node), nil
}

// subResource scans the elements after the metadata property list for the
// one carrying key, e.g. "settings", "scoreboard", "teams".
func subResource(arr []any, key string) any {
	for _, el := range arr {
		if v := wire.Get(el, key); v != nil {
			return v
		}
	}
	return nil
}
