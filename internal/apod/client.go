package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/asterizk/starhop/internal/http"
)

// BuildURL composes the APOD request URL. thumbs=true asks the API for a
// thumbnail when the day's media is a video. date may be empty, which means
// today's picture.
func BuildURL(base, apiKey, date string) string {
	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("thumbs", "true")
	if date != "" {
		query.Set("date", date)
	}
	return fmt.Sprintf("%s?%s", base, query.Encode())
}

// Client fetches APOD metadata with bounded retry.
//
// Transient failures (429 and gateway 5xx statuses, plus transport errors
// such as connection resets) are retried up to MaxRetries attempts with
// Backoff^attempt seconds between them. Any other HTTP error propagates on
// the first attempt.
type Client struct {
	// HTTP performs the underlying requests.
	HTTP *http.Client

	// MaxRetries is the total attempt count, not the retry count.
	MaxRetries int

	// Backoff is the exponent base for the inter-attempt sleep, in seconds.
	Backoff float64

	// Sleep pauses between attempts. Left nil, a context-aware
	// time.After-based sleep is used; tests inject a recorder.
	Sleep func(ctx context.Context, d time.Duration)

	// Notice receives a human-readable line before each retry.
	Notice func(msg string)
}

// NewClient returns a Client with the given retry policy over httpClient.
func NewClient(httpClient *http.Client, maxRetries int, backoff float64) *Client {
	return &Client{
		HTTP:       httpClient,
		MaxRetries: maxRetries,
		Backoff:    backoff,
	}
}

// Fetch performs the GET and decodes the JSON response, applying the retry
// policy. The last error is returned once attempts are exhausted.
func (c *Client) Fetch(ctx context.Context, requestURL string) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		body, err := c.HTTP.Get(ctx, requestURL)
		if err == nil {
			var resp Response
			if err := json.Unmarshal(body, &resp); err != nil {
				return nil, fmt.Errorf("decode APOD response: %w", err)
			}
			return &resp, nil
		}

		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && !statusErr.IsTransient() {
			// Permanent API error: no point retrying.
			return nil, err
		}

		lastErr = err
		if attempt < c.MaxRetries-1 {
			delay := time.Duration(math.Pow(c.Backoff, float64(attempt)) * float64(time.Second))
			c.notice(fmt.Sprintf("Error '%v'; retrying in %.1fs...", err, delay.Seconds()))
			c.sleep(ctx, delay)
		}
	}

	return nil, lastErr
}

func (c *Client) sleep(ctx context.Context, d time.Duration) {
	if c.Sleep != nil {
		c.Sleep(ctx, d)
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func (c *Client) notice(msg string) {
	if c.Notice != nil {
		c.Notice(msg)
	}
}
