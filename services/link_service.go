package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/models"
)

// LinkService reads the three upstream datasets (links, categories,
// site config), normalizes raw records into typed entities and applies
// the pinned/recency ordering.
type LinkService struct {
	notion *NotionService
	cfg    *config.Config
}

func NewLinkService(notion *NotionService, cfg *config.Config) *LinkService {
	return &LinkService{notion: notion, cfg: cfg}
}

// GetLinks fetches and normalizes the full link dataset, sorted with
// pinned entries first and most recently created next.
func (s *LinkService) GetLinks(ctx context.Context) ([]models.Link, error) {
	pages, err := s.notion.QueryDatabase(ctx, s.cfg.NotionLinksDBID, models.NotionQueryRequest{
		Sorts: []models.NotionSort{
			{Property: "category1", Direction: "ascending"},
			{Property: "category2", Direction: "ascending"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links: %w", err)
	}

	links := make([]models.Link, 0, len(pages))
	for _, page := range pages {
		links = append(links, normalizeLink(page))
	}

	return SortLinks(links, s.cfg.PinnedTag), nil
}

// GetCategories fetches the enabled categories ordered by their sort
// key.
func (s *LinkService) GetCategories(ctx context.Context) ([]models.Category, error) {
	if s.cfg.NotionCategoriesDBID == "" {
		return []models.Category{}, nil
	}

	pages, err := s.notion.QueryDatabase(ctx, s.cfg.NotionCategoriesDBID, models.NotionQueryRequest{
		Filter: &models.NotionFilter{
			Property: "Enabled",
			Checkbox: &models.NotionCheckboxFilter{Equals: true},
		},
		Sorts: []models.NotionSort{
			{Property: "Order", Direction: "ascending"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]models.Category, 0, len(pages))
	for _, page := range pages {
		categories = append(categories, normalizeCategory(page))
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})

	return categories, nil
}

// GetWebsiteConfig builds the site configuration map from the config
// dataset, resolves the favicon from the database icon and fills
// documented defaults. Unlike links and categories, a failure here is
// fatal to the caller.
func (s *LinkService) GetWebsiteConfig(ctx context.Context) (models.WebsiteConfig, error) {
	pages, err := s.notion.QueryDatabase(ctx, s.cfg.NotionWebsiteConfigID, models.NotionQueryRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch website config: %w", err)
	}

	configMap := normalizeConfig(pages)

	// The config database's own icon doubles as the site favicon.
	favicon := models.DefaultFavicon
	if database, err := s.notion.RetrieveDatabase(ctx, s.cfg.NotionWebsiteConfigID); err == nil {
		favicon = ResolveFavicon(database.Icon)
	}
	configMap["SITE_FAVICON"] = favicon

	return configMap.ApplyDefaults(), nil
}

// CreateLink appends a new link record to the upstream store and
// returns the assigned id.
func (s *LinkService) CreateLink(ctx context.Context, req models.CreateLinkRequest) (string, error) {
	properties := map[string]models.NotionProperty{
		"Name": models.NewTitleProperty(req.Name),
		"URL":  models.NewURLProperty(req.URL),
	}
	if req.Desc != "" {
		properties["desc"] = models.NewRichTextProperty(req.Desc)
	}
	if req.Category1 != "" {
		properties["category1"] = models.NewSelectProperty(req.Category1)
	}
	if req.Category2 != "" {
		properties["category2"] = models.NewSelectProperty(req.Category2)
	}
	if req.IconLink != "" {
		properties["iconlink"] = models.NewURLProperty(req.IconLink)
	}
	if len(req.Tags) > 0 {
		properties["Tags"] = models.NewMultiSelectProperty(req.Tags)
	}
	if req.IsAdminOnly {
		properties["isAdmin"] = models.NewCheckboxProperty(true)
	}

	id, err := s.notion.CreatePage(ctx, s.cfg.NotionLinksDBID, properties)
	if err != nil {
		return "", fmt.Errorf("failed to create link: %w", err)
	}
	return id, nil
}

// normalizeLink maps one raw record to a Link, filling defaults for
// absent fields. It never fails: malformed properties degrade to the
// documented defaults.
func normalizeLink(page models.NotionPage) models.Link {
	return models.Link{
		ID:          page.ID,
		Name:        page.TitleText("Name"),
		Created:     page.CreatedTimeValue("Created"),
		Desc:        page.RichTextValue("desc"),
		URL:         urlOrPlaceholder(page.URLValue("URL")),
		Category1:   page.SelectName("category1", models.DefaultCategory1),
		Category2:   page.SelectName("category2", models.DefaultCategory2),
		IconFile:    page.FileURL("iconfile"),
		IconLink:    page.URLValue("iconlink"),
		Tags:        page.MultiSelectNames("Tags"),
		IsAdminOnly: page.CheckboxValue("isAdmin"),
	}
}

// urlOrPlaceholder keeps entries without a URL renderable as inert
// anchors.
func urlOrPlaceholder(url string) string {
	if url == "" {
		return "#"
	}
	return url
}

func normalizeCategory(page models.NotionPage) models.Category {
	return models.Category{
		ID:       page.ID,
		Name:     page.TitleText("Name"),
		IconName: page.RichTextValue("IconName"),
		Order:    page.NumberValue("Order"),
		Enabled:  page.CheckboxValue("Enabled"),
	}
}

// normalizeConfig reads Name/Value pairs into an uppercase-keyed map;
// later duplicates overwrite earlier ones in upstream query order.
func normalizeConfig(pages []models.NotionPage) models.WebsiteConfig {
	configMap := models.WebsiteConfig{}
	for _, page := range pages {
		name := page.TitleText("Name")
		if name == "" {
			continue
		}
		configMap[strings.ToUpper(name)] = page.RichTextValue("Value")
	}
	return configMap
}

// ResolveFavicon turns a database icon into a usable favicon source:
// emoji icons become inline SVG data URIs embedding the glyph, hosted
// and external files pass their URL through, anything else falls back
// to the static default.
func ResolveFavicon(icon *models.NotionIcon) string {
	if icon == nil {
		return models.DefaultFavicon
	}
	switch icon.Type {
	case "emoji":
		if icon.Emoji != "" {
			return "data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>" + icon.Emoji + "</text></svg>"
		}
	case "file":
		if icon.File != nil {
			return icon.File.URL
		}
	case "external":
		if icon.External != nil {
			return icon.External.URL
		}
	}
	return models.DefaultFavicon
}

// parseCreated parses the ISO-8601 created timestamp; the zero time
// stands in for missing or malformed values so such entries sort last
// within their pinned rank.
func parseCreated(created string) time.Time {
	if created == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return time.Time{}
	}
	return t
}
