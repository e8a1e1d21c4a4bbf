package models

// Defaults applied when the upstream record has no category selects.
const (
	DefaultCategory1 = "Uncategorized"
	DefaultCategory2 = "Default"
)

// Link is one bookmarked entry normalized from an upstream page.
type Link struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Created     string   `json:"created"`
	Desc        string   `json:"desc,omitempty"`
	URL         string   `json:"url"`
	Category1   string   `json:"category1"`
	Category2   string   `json:"category2"`
	IconFile    string   `json:"iconfile,omitempty"`
	IconLink    string   `json:"iconlink,omitempty"`
	Tags        []string `json:"tags"`
	IsAdminOnly bool     `json:"isAdminOnly"`
}

// HasTag reports whether the link carries the given tag.
func (l Link) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CreateLinkRequest is the payload for appending a new link upstream.
type CreateLinkRequest struct {
	Name        string   `json:"name" validate:"required"`
	URL         string   `json:"url" validate:"required"`
	Desc        string   `json:"desc"`
	Category1   string   `json:"category1"`
	Category2   string   `json:"category2"`
	IconLink    string   `json:"iconlink"`
	Tags        []string `json:"tags"`
	IsAdminOnly bool     `json:"isAdminOnly"`
}

// CreateLinkResponse reports the id assigned by the upstream store.
type CreateLinkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id"`
}
