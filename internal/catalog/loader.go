package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const maxFeedBytes = 8 << 20

// Loader fetches raw feed bytes.
type Loader interface {
	Load(ctx context.Context) ([]byte, error)
	// Location names where the feed comes from, for logs.
	Location() string
}

// FileLoader reads the feed from disk.
type FileLoader struct {
	Path string
}

// Load reads the file.
func (l FileLoader) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", l.Path, err)
	}
	return data, nil
}

// Location returns the file path.
func (l FileLoader) Location() string { return l.Path }

// HTTPLoader downloads the feed.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// NewHTTPLoader creates an HTTPLoader with a bounded client timeout.
func NewHTTPLoader(url string) HTTPLoader {
	return HTTPLoader{URL: url, Client: &http.Client{Timeout: 15 * time.Second}}
}

// Load issues a GET and returns the body of a 200 response.
func (l HTTPLoader) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", l.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", l.URL, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return data, nil
}

// Location returns the URL.
func (l HTTPLoader) Location() string { return l.URL }
