// Package http provides an HTTP client configured for NASA APOD requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Typed status errors (StatusError) for retry classification
//   - Streaming image downloads to disk
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch the JSON metadata
//	body, err := client.Get(ctx, apodURL)
//
//	// Download the selected image
//	err = client.DownloadFile(ctx, imageURL, "/tmp/apod.jpg")
//
// # Status Errors
//
// Non-200 responses surface as *StatusError. IsTransient reports whether
// the code belongs to the retryable set (429 and gateway 5xx):
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.IsTransient() {
//	    // back off and retry
//	}
package http
