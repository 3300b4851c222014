package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// Client retrieves a catalog document with a single attempt. Locations with
// an http or https scheme are fetched over the network; anything else is read
// from disk, relative paths being resolved against the site directory.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseDir    string
}

func NewClient(userAgent string, baseDir string) *Client {
	return &Client{
		// No timeout: the request lives as long as the caller's context.
		httpClient: &http.Client{},
		userAgent:  userAgent,
		baseDir:    baseDir,
	}
}

func (c *Client) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return c.get(ctx, location)
		case "file":
			return c.readFile(u.Path)
		}
	}
	return c.readFile(location)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) readFile(path string) ([]byte, error) {
	p := filepath.FromSlash(path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.baseDir, p)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
