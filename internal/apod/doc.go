// Package apod talks to NASA's Astronomy Picture of the Day API.
//
// This package contains:
//   - The Response type matching the API's JSON fields
//   - BuildURL for composing the request (always with thumbs=true)
//   - A Client with bounded retry and exponential backoff for transient
//     failures
//   - PickImageURL, the media-type-aware image selection
//
// # Image Selection
//
// For media_type "image", the HD URL is preferred over the standard URL.
// For videos, the thumbnail (present because of thumbs=true) is preferred.
// When nothing is available, PickImageURL returns a NoImageError, which the
// pipeline treats as fatal.
package apod
