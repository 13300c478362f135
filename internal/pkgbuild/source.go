package pkgbuild

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrHTTPStatus is returned when a remote PKGBUILD fetch gets a non-2xx response
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// Fetcher retrieves remote PKGBUILDs over HTTP.
// The zero client default is intentional: one blocking GET per package,
// no retries, no timeout override.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher using http.DefaultClient.
func NewFetcher() *Fetcher {
	return &Fetcher{client: http.DefaultClient}
}

// SetHTTPClient sets a custom underlying HTTP client (useful for testing).
func (f *Fetcher) SetHTTPClient(client *http.Client) {
	f.client = client
}

// Fetch performs a GET against url and returns the response body.
// Any status outside the 2xx range is an ErrHTTPStatus error.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d fetching %s", ErrHTTPStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	return body, nil
}

// ParseRemote fetches a PKGBUILD from url and extracts its version.
func (f *Fetcher) ParseRemote(url string) (Version, error) {
	body, err := f.Fetch(url)
	if err != nil {
		return Version{}, err
	}
	return Parse(string(body))
}
