package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/models"
)

func testConfig() *config.Config {
	return &config.Config{
		NotionLinksDBID:       "links-db",
		NotionCategoriesDBID:  "cats-db",
		NotionWebsiteConfigID: "config-db",
		PinnedTag:             pinnedTag,
	}
}

// fakeNotion serves canned query results per database id plus the
// config database metadata.
type fakeNotion struct {
	pages map[string][]models.NotionPage
	icon  *models.NotionIcon
}

func (f *fakeNotion) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		switch {
		case len(parts) == 3 && parts[0] == "databases" && parts[2] == "query":
			json.NewEncoder(w).Encode(models.NotionQueryResponse{Results: f.pages[parts[1]]})
		case len(parts) == 2 && parts[0] == "databases":
			json.NewEncoder(w).Encode(models.NotionDatabase{ID: parts[1], Icon: f.icon})
		default:
			http.NotFound(w, r)
		}
	}
}

func newTestLinkService(t *testing.T, fake *fakeNotion) *LinkService {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	notion := NewNotionService("test-token")
	notion.baseURL = server.URL + "/"
	return NewLinkService(notion, testConfig())
}

func titleProp(text string) models.NotionProperty {
	return models.NotionProperty{Type: "title", Title: []models.NotionRichText{{PlainText: text}}}
}

func richTextProp(text string) models.NotionProperty {
	return models.NotionProperty{Type: "rich_text", RichText: []models.NotionRichText{{PlainText: text}}}
}

func checkboxProp(checked bool) models.NotionProperty {
	return models.NotionProperty{Type: "checkbox", Checkbox: &checked}
}

func numberProp(n float64) models.NotionProperty {
	return models.NotionProperty{Type: "number", Number: &n}
}

func TestGetLinksNormalizesRecords(t *testing.T) {
	fake := &fakeNotion{pages: map[string][]models.NotionPage{
		"links-db": {
			{
				ID: "full",
				Properties: map[string]models.NotionProperty{
					"Name":      titleProp("GitHub"),
					"desc":      richTextProp("code hosting"),
					"URL":       {Type: "url", URL: "https://github.com"},
					"category1": {Type: "select", Select: &models.NotionSelectValue{Name: "Dev"}},
					"category2": {Type: "select", Select: &models.NotionSelectValue{Name: "Hosting"}},
					"Tags":      {Type: "multi_select", MultiSelect: []models.NotionSelectValue{{Name: "daily"}, {Name: pinnedTag}}},
					"Created":   {Type: "created_time", CreatedTime: "2024-01-02T00:00:00.000Z"},
					"isAdmin":   checkboxProp(true),
					"iconfile": {Type: "files", Files: []models.NotionFile{
						{Type: "file", File: &models.NotionFileRef{URL: "https://files.example/icon.png"}},
					}},
				},
			},
			{
				ID: "sparse",
				Properties: map[string]models.NotionProperty{
					"Name": titleProp("Bare"),
				},
			},
		},
	}}

	links, err := newTestLinkService(t, fake).GetLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 2)

	// The pinned entry sorts first.
	full := links[0]
	assert.Equal(t, "GitHub", full.Name)
	assert.Equal(t, "code hosting", full.Desc)
	assert.Equal(t, "https://github.com", full.URL)
	assert.Equal(t, "Dev", full.Category1)
	assert.Equal(t, "Hosting", full.Category2)
	assert.Equal(t, []string{"daily", pinnedTag}, full.Tags)
	assert.Equal(t, "https://files.example/icon.png", full.IconFile)
	assert.True(t, full.IsAdminOnly)

	sparse := links[1]
	assert.Equal(t, models.DefaultCategory1, sparse.Category1)
	assert.Equal(t, models.DefaultCategory2, sparse.Category2)
	assert.Equal(t, "#", sparse.URL)
	assert.Empty(t, sparse.Tags)
	assert.False(t, sparse.IsAdminOnly)
	assert.Empty(t, sparse.Created)
}

func TestGetCategoriesNormalizesAndOrders(t *testing.T) {
	fake := &fakeNotion{pages: map[string][]models.NotionPage{
		"cats-db": {
			{ID: "c2", Properties: map[string]models.NotionProperty{
				"Name":     titleProp("News"),
				"IconName": richTextProp("Newspaper"),
				"Order":    numberProp(2),
				"Enabled":  checkboxProp(true),
			}},
			{ID: "c1", Properties: map[string]models.NotionProperty{
				"Name":    titleProp("Dev"),
				"Order":   numberProp(1),
				"Enabled": checkboxProp(true),
			}},
			{ID: "c0", Properties: map[string]models.NotionProperty{
				"Name": titleProp("Defaults"),
			}},
		},
	}}

	categories, err := newTestLinkService(t, fake).GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Defaults", categories[0].Name)
	assert.Equal(t, 0, categories[0].Order)
	assert.False(t, categories[0].Enabled)
	assert.Equal(t, "Dev", categories[1].Name)
	assert.Equal(t, "News", categories[2].Name)
	assert.Equal(t, "Newspaper", categories[2].IconName)
}

func TestGetCategoriesWithoutDatasetConfigured(t *testing.T) {
	svc := NewLinkService(NewNotionService("test-token"), &config.Config{})

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestGetWebsiteConfigMapsAndDefaults(t *testing.T) {
	fake := &fakeNotion{
		pages: map[string][]models.NotionPage{
			"config-db": {
				{ID: "1", Properties: map[string]models.NotionProperty{
					"Name":  titleProp("site_title"),
					"Value": richTextProp("First Title"),
				}},
				{ID: "2", Properties: map[string]models.NotionProperty{
					"Name":  titleProp("Site_Title"),
					"Value": richTextProp("Second Title"),
				}},
				{ID: "3", Properties: map[string]models.NotionProperty{
					"Name":  titleProp("CUSTOM_KEY"),
					"Value": richTextProp("custom"),
				}},
				{ID: "unnamed", Properties: map[string]models.NotionProperty{
					"Value": richTextProp("ignored"),
				}},
			},
		},
		icon: &models.NotionIcon{Type: "emoji", Emoji: "🚀"},
	}

	siteConfig, err := newTestLinkService(t, fake).GetWebsiteConfig(context.Background())
	require.NoError(t, err)

	// Uppercased keys, last write wins, unknown keys pass through.
	assert.Equal(t, "Second Title", siteConfig["SITE_TITLE"])
	assert.Equal(t, "custom", siteConfig["CUSTOM_KEY"])

	// Documented defaults fill the gaps.
	assert.Equal(t, "simple", siteConfig["THEME_NAME"])
	assert.Equal(t, "true", siteConfig["SHOW_THEME_SWITCHER"])

	// The database emoji icon becomes an inline SVG favicon.
	assert.Contains(t, siteConfig["SITE_FAVICON"], "data:image/svg+xml")
	assert.Contains(t, siteConfig["SITE_FAVICON"], "🚀")
}

func TestResolveFavicon(t *testing.T) {
	assert.Equal(t, models.DefaultFavicon, ResolveFavicon(nil))
	assert.Equal(t, models.DefaultFavicon, ResolveFavicon(&models.NotionIcon{Type: "unknown"}))

	hosted := ResolveFavicon(&models.NotionIcon{Type: "file", File: &models.NotionFileRef{URL: "https://files.example/icon.png"}})
	assert.Equal(t, "https://files.example/icon.png", hosted)

	external := ResolveFavicon(&models.NotionIcon{Type: "external", External: &models.NotionFileRef{URL: "https://cdn.example/icon.svg"}})
	assert.Equal(t, "https://cdn.example/icon.svg", external)

	emoji := ResolveFavicon(&models.NotionIcon{Type: "emoji", Emoji: "⭐"})
	assert.True(t, strings.HasPrefix(emoji, "data:image/svg+xml"))
	assert.Contains(t, emoji, "⭐")
}

func TestCreateLinkBuildsProperties(t *testing.T) {
	var captured createPageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(createPageResponse{ID: "created-id"})
	}))
	t.Cleanup(server.Close)

	notion := NewNotionService("test-token")
	notion.baseURL = server.URL + "/"
	svc := NewLinkService(notion, testConfig())

	id, err := svc.CreateLink(context.Background(), models.CreateLinkRequest{
		Name:        "Example",
		URL:         "https://example.com",
		Desc:        "a site",
		Category1:   "Dev",
		Tags:        []string{"daily"},
		IsAdminOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "created-id", id)

	assert.Equal(t, "links-db", captured.Parent.DatabaseID)
	assert.Contains(t, captured.Properties, "Name")
	assert.Contains(t, captured.Properties, "URL")
	assert.Contains(t, captured.Properties, "desc")
	assert.Contains(t, captured.Properties, "category1")
	assert.Contains(t, captured.Properties, "Tags")
	assert.Contains(t, captured.Properties, "isAdmin")
	assert.NotContains(t, captured.Properties, "category2")
	assert.NotContains(t, captured.Properties, "iconlink")
}
