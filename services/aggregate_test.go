package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navhub/navhub_backend/models"
)

const pinnedTag = "pinned"

func TestSortLinksPinnedFirstThenRecency(t *testing.T) {
	links := []models.Link{
		{ID: "plain-new", Created: "2024-06-01T00:00:00Z"},
		{ID: "pinned-old", Created: "2023-01-01T00:00:00Z", Tags: []string{pinnedTag}},
		{ID: "pinned-new", Created: "2024-01-01T00:00:00Z", Tags: []string{pinnedTag}},
		{ID: "plain-old", Created: "2022-01-01T00:00:00Z"},
	}

	sorted := SortLinks(links, pinnedTag)

	ids := make([]string, len(sorted))
	for i, link := range sorted {
		ids[i] = link.ID
	}
	// Pinned entries lead regardless of recency; within a rank, most
	// recent first.
	assert.Equal(t, []string{"pinned-new", "pinned-old", "plain-new", "plain-old"}, ids)
}

func TestSortLinksStableOnEqualRank(t *testing.T) {
	links := []models.Link{
		{ID: "first", Created: "2024-01-01T00:00:00Z"},
		{ID: "second", Created: "2024-01-01T00:00:00Z"},
		{ID: "third", Created: ""},
		{ID: "fourth", Created: ""},
	}

	sorted := SortLinks(links, pinnedTag)

	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
	assert.Equal(t, "fourth", sorted[3].ID)
}

func TestSortLinksDoesNotMutateInput(t *testing.T) {
	links := []models.Link{
		{ID: "b", Created: "2023-01-01T00:00:00Z"},
		{ID: "a", Created: "2024-01-01T00:00:00Z"},
	}

	SortLinks(links, pinnedTag)

	assert.Equal(t, "b", links[0].ID)
}

func TestFilterByVisibility(t *testing.T) {
	links := []models.Link{
		{ID: "public"},
		{ID: "secret", IsAdminOnly: true},
	}

	anonymous := FilterByVisibility(links, false)
	require.Len(t, anonymous, 1)
	assert.Equal(t, "public", anonymous[0].ID)

	admin := FilterByVisibility(links, true)
	assert.Len(t, admin, 2)
}

func TestFilterBySearchCaseInsensitiveAcrossFields(t *testing.T) {
	links := []models.Link{
		{ID: "by-url", Name: "Code Host", URL: "https://github.com"},
		{ID: "by-name", Name: "My GitHub Mirror", URL: "https://example.com"},
		{ID: "by-desc", Desc: "github alternative", URL: "https://example.org"},
		{ID: "by-tag", Tags: []string{"GitHub"}, URL: "https://example.net"},
		{ID: "no-match", Name: "Weather", URL: "https://example.io"},
	}

	matched := FilterBySearch(links, "GITHUB")

	ids := make([]string, len(matched))
	for i, link := range matched {
		ids[i] = link.ID
	}
	assert.Equal(t, []string{"by-url", "by-name", "by-desc", "by-tag"}, ids)
}

func TestFilterBySearchBlankKeywordShortCircuits(t *testing.T) {
	links := []models.Link{{ID: "a"}, {ID: "b", IsAdminOnly: true}}

	assert.Equal(t, links, FilterBySearch(links, ""))
	assert.Equal(t, links, FilterBySearch(links, "   "))
}

func TestGroupByCategoryDropsDisabledCategories(t *testing.T) {
	links := []models.Link{
		{ID: "kept", Category1: "Dev", Category2: "Tools"},
		{ID: "dropped", Category1: "Hidden", Category2: "Default"},
	}
	enabled := map[string]bool{"Dev": true}

	grouped := GroupByCategory(links, enabled)

	require.Contains(t, grouped.ByCategory, "Dev")
	assert.NotContains(t, grouped.ByCategory, "Hidden")
	assert.Len(t, grouped.ByCategory["Dev"]["Tools"], 1)
}

func TestGroupByCategoryKeepsSubcategoryAppearanceOrder(t *testing.T) {
	links := []models.Link{
		{ID: "1", Category1: "Dev", Category2: "Editors"},
		{ID: "2", Category1: "Dev", Category2: "Hosting"},
		{ID: "3", Category1: "Dev", Category2: "Editors"},
	}

	grouped := GroupByCategory(links, map[string]bool{"Dev": true})

	assert.Equal(t, []string{"Editors", "Hosting"}, grouped.SubOrder["Dev"])
	assert.Len(t, grouped.ByCategory["Dev"]["Editors"], 2)
}

func TestDeriveActiveCategories(t *testing.T) {
	categories := []models.Category{
		{Name: "Later", Order: 2, Enabled: true},
		{Name: "Empty", Order: 1, Enabled: true},
		{Name: "Disabled", Order: 0, Enabled: false},
		{Name: "Early", Order: 1, Enabled: true},
	}
	links := []models.Link{
		{ID: "a", Category1: "Later", Category2: "Sub B"},
		{ID: "b", Category1: "Early", Category2: "Sub A"},
		{ID: "c", Category1: "Disabled", Category2: "Default"},
	}
	grouped := GroupByCategory(links, map[string]bool{"Later": true, "Early": true, "Disabled": true})

	active := DeriveActiveCategories(categories, grouped)

	require.Len(t, active, 2)
	// Ordered by sort key ascending; "Empty" has no links, "Disabled"
	// is not enabled.
	assert.Equal(t, "Early", active[0].Name)
	assert.Equal(t, "Later", active[1].Name)

	require.Len(t, active[0].SubCategories, 1)
	assert.Equal(t, models.SubCategory{ID: "sub-a", Name: "Sub A"}, active[0].SubCategories[0])
}

func TestDeriveActiveCategoriesDeterministic(t *testing.T) {
	categories := []models.Category{
		{Name: "Dev", Order: 1, Enabled: true},
		{Name: "News", Order: 2, Enabled: true},
	}
	links := []models.Link{
		{ID: "a", Category1: "Dev", Category2: "Tools"},
		{ID: "b", Category1: "News", Category2: "Default"},
	}
	enabled := map[string]bool{"Dev": true, "News": true}

	first := DeriveActiveCategories(categories, GroupByCategory(links, enabled))
	second := DeriveActiveCategories(categories, GroupByCategory(links, enabled))

	assert.Equal(t, first, second)
}
