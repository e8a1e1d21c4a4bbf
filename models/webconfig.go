package models

// WebsiteConfig is the flat string-keyed site configuration. Keys are
// uppercased upstream names; unknown keys are passed through for
// consumers that understand them.
type WebsiteConfig map[string]string

// DefaultFavicon is served when the upstream database has no icon.
const DefaultFavicon = "/favicon.ico"

// configDefaults are the documented fallbacks for missing keys.
var configDefaults = map[string]string{
	"SITE_TITLE":          "My Navigation",
	"SITE_DESCRIPTION":    "Personal navigation site",
	"SITE_KEYWORDS":       "navigation,bookmarks",
	"SITE_AUTHOR":         "",
	"SITE_FOOTER":         "",
	"SITE_FAVICON":        DefaultFavicon,
	"THEME_NAME":          "simple",
	"SHOW_THEME_SWITCHER": "true",
	"SOCIAL_GITHUB":       "",
	"SOCIAL_BLOG":         "",
	"SOCIAL_X":            "",
	"SOCIAL_JIKE":         "",
	"SOCIAL_WEIBO":        "",
	"SOCIAL_XIAOHONGSHU":  "",
	"CLARITY_ID":          "",
	"GA_ID":               "",
	"WIDGET_CONFIG":       "",
}

// ApplyDefaults fills every documented key that is absent from the
// map. Existing values, including empty strings set upstream, win.
func (c WebsiteConfig) ApplyDefaults() WebsiteConfig {
	for key, value := range configDefaults {
		if _, ok := c[key]; !ok {
			c[key] = value
		}
	}
	return c
}
