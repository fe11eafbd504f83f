package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// StatusError is returned for any response outside the 2xx range so callers
// can branch on the code (retry classification, friendly CLI messages).
type StatusError struct {
	Code   int
	Status string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// IsTransient reports whether the status is worth retrying: rate limiting
// and the common upstream/gateway 5xx family.
func (e *StatusError) IsTransient() bool {
	switch e.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Client wraps HTTP operations with StarHop-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Typed status errors for retry classification
//   - Image download to a local file
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch the APOD JSON payload
//	body, err := client.Get(ctx, "https://api.nasa.gov/planetary/apod?api_key=...")
//
//	// Download the day's image
//	err = client.DownloadFile(ctx, hdURL, "/tmp/apod.jpg")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client configured for the APOD API.
//
// The client is configured with:
//   - 60 second timeout
//   - "StarHop" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: "StarHop",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns a *StatusError if the response status is not 200 OK, so callers
// can inspect the code; any transport failure is returned as-is.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// DownloadFile downloads a file to the specified path.
//
// The file is created (or truncated if it exists) and the content is
// streamed directly to disk, avoiding loading the entire image into memory.
//
// Example:
//
//	err := client.DownloadFile(ctx, hdURL, "/tmp/apod-download.jpg")
func (c *Client) DownloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, resp.Body)
	return err
}
