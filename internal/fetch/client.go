// Package fetch retrieves personal puzzle input over HTTP using a session
// cookie. One GET per call, no retries, no caching, the response body is
// streamed through untouched.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/raveheart1/aocprep/internal/config"
)

const defaultUserAgent = "aocprep (+https://github.com/raveheart1/aocprep)"

// Client fetches puzzle input from the puzzle site.
type Client struct {
	// BaseURL is the scheme and host of the puzzle site, without a
	// trailing slash. Overridable in tests.
	BaseURL string

	userAgent string
	http      *http.Client
}

// NewClient creates a client from the given configuration. The host is
// normally bare ("adventofcode.com"); a host with an explicit scheme is
// used as-is.
func NewClient(cfg *config.Configuration) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	base := cfg.Host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return &Client{
		BaseURL:   strings.TrimRight(base, "/"),
		userAgent: ua,
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// InputURL returns the input URL for a day and year.
func (c *Client) InputURL(day, year string) string {
	return fmt.Sprintf("%s/%s/day/%s/input", c.BaseURL, year, day)
}

// FetchInput issues a single GET for the given day and year, attaching the
// resolved headers, and copies the response body verbatim to w.
func (c *Client) FetchInput(ctx context.Context, day, year string, headers http.Header, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.InputURL(day, year), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch input: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fetch input: %s returned %s: %s",
			req.URL.Host, resp.Status, firstLine(body))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func firstLine(b []byte) string {
	for i, c := range b {
		if c == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
