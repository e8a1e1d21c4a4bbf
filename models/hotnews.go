package models

// HotNewsItem is one trending topic from the configured feed.
type HotNewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Hot   string `json:"hot,omitempty"`
}

// HotNewsResponse wraps the trending list for the widget.
type HotNewsResponse struct {
	Success bool          `json:"success"`
	Items   []HotNewsItem `json:"items"`
}
