package apod

// Response represents the deserialized APOD metadata for a single day.
//
// With thumbs=true on the request, video entries carry ThumbnailURL so a
// still image can be produced even when the day's pick is a video.
type Response struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Copyright    string `json:"copyright"`
}

// DisplayTitle returns the title, or the generic APOD heading if the API
// omitted it.
func (r *Response) DisplayTitle() string {
	if r.Title == "" {
		return "Astronomy Picture of the Day"
	}
	return r.Title
}
