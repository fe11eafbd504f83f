package apod

import "fmt"

// NoImageError indicates the day's response offered no downloadable image
// URL at all. This is fatal for the pipeline: there is nothing to caption.
type NoImageError struct {
	MediaType string
	Date      string
}

// Error implements the error interface.
func (e *NoImageError) Error() string {
	return fmt.Sprintf("no downloadable image URL found for media_type=%q on %s", e.MediaType, e.Date)
}

// PickImageURL chooses the best image URL from a response.
//
// For media_type "image" the HD variant is preferred over the standard one.
// For anything else (videos, mostly) the thumbnail provided by thumbs=true
// is preferred, falling back to the raw URL.
func PickImageURL(resp *Response) (string, error) {
	var url string
	if resp.MediaType == "image" {
		url = resp.HDURL
		if url == "" {
			url = resp.URL
		}
	} else {
		url = resp.ThumbnailURL
		if url == "" {
			url = resp.URL
		}
	}

	if url == "" {
		return "", &NoImageError{MediaType: resp.MediaType, Date: resp.Date}
	}
	return url, nil
}
