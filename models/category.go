package models

import "strings"

// Category is a top-level link grouping.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	IconName      string        `json:"iconName"`
	Order         int           `json:"order"`
	Enabled       bool          `json:"enabled"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// SubCategory is a derived second-level grouping (distinct category2
// values among the category's visible links).
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewSubCategory builds a subcategory with a lowercase hyphenated slug
// for its id.
func NewSubCategory(name string) SubCategory {
	return SubCategory{
		ID:   strings.Join(strings.Fields(strings.ToLower(name)), "-"),
		Name: name,
	}
}
