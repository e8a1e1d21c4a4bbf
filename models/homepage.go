package models

import "time"

// HomePage is the render-ready aggregate served to the presentation
// layer and cached as one unit: site config, active categories (with
// derived subcategories) and the visible links grouped two levels
// deep (category1 then category2).
type HomePage struct {
	Config      WebsiteConfig                `json:"config"`
	Categories  []Category                   `json:"categories"`
	Links       map[string]map[string][]Link `json:"links"`
	GeneratedAt time.Time                    `json:"generatedAt"`
}
