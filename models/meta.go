package models

// FetchMetaRequest names the page to scrape.
type FetchMetaRequest struct {
	URL string `json:"url" validate:"required"`
}

// FetchMetaResponse carries the best-effort title and icon found on
// the target page.
type FetchMetaResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
}
