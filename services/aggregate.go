package services

import (
	"sort"
	"strings"

	"github.com/navhub/navhub_backend/models"
)

// Pure aggregation functions: given the same inputs they always yield
// the same grouping and ordering, with no side effects.

// SortLinks orders links with pinned-tag entries first, then by
// created timestamp descending. The sort is stable: equal-rank entries
// keep their upstream relative order.
func SortLinks(links []models.Link, pinnedTag string) []models.Link {
	sorted := make([]models.Link, len(links))
	copy(sorted, links)

	sort.SliceStable(sorted, func(i, j int) bool {
		iPinned := sorted[i].HasTag(pinnedTag)
		jPinned := sorted[j].HasTag(pinnedTag)
		if iPinned != jPinned {
			return iPinned
		}
		return parseCreated(sorted[i].Created).After(parseCreated(sorted[j].Created))
	})

	return sorted
}

// FilterByVisibility removes admin-only links for anonymous viewers.
func FilterByVisibility(links []models.Link, isAdmin bool) []models.Link {
	if isAdmin {
		return links
	}
	visible := make([]models.Link, 0, len(links))
	for _, link := range links {
		if !link.IsAdminOnly {
			visible = append(visible, link)
		}
	}
	return visible
}

// FilterBySearch keeps links whose name, description, URL or any tag
// contains the keyword, case-insensitively. A blank keyword returns
// the input unchanged.
func FilterBySearch(links []models.Link, keyword string) []models.Link {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return links
	}

	matched := make([]models.Link, 0, len(links))
	for _, link := range links {
		if linkMatches(link, keyword) {
			matched = append(matched, link)
		}
	}
	return matched
}

func linkMatches(link models.Link, keyword string) bool {
	if strings.Contains(strings.ToLower(link.Name), keyword) ||
		strings.Contains(strings.ToLower(link.Desc), keyword) ||
		strings.Contains(strings.ToLower(link.URL), keyword) {
		return true
	}
	for _, tag := range link.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}

// GroupedLinks maps category1 -> category2 -> ordered links, and
// remembers the first-appearance order of each category's
// subcategories.
type GroupedLinks struct {
	ByCategory map[string]map[string][]models.Link
	SubOrder   map[string][]string
}

// GroupByCategory buckets links two levels deep. Links whose category1
// is not in the enabled set are dropped entirely, not bucketed under a
// fallback.
func GroupByCategory(links []models.Link, enabledNames map[string]bool) GroupedLinks {
	grouped := GroupedLinks{
		ByCategory: make(map[string]map[string][]models.Link),
		SubOrder:   make(map[string][]string),
	}

	for _, link := range links {
		if !enabledNames[link.Category1] {
			continue
		}
		bucket, ok := grouped.ByCategory[link.Category1]
		if !ok {
			bucket = make(map[string][]models.Link)
			grouped.ByCategory[link.Category1] = bucket
		}
		if _, seen := bucket[link.Category2]; !seen {
			grouped.SubOrder[link.Category1] = append(grouped.SubOrder[link.Category1], link.Category2)
		}
		bucket[link.Category2] = append(bucket[link.Category2], link)
	}

	return grouped
}

// DeriveActiveCategories keeps the categories that are enabled and
// have at least one grouped link, ordered by their sort key ascending,
// each annotated with its subcategories in first-appearance order.
func DeriveActiveCategories(categories []models.Category, grouped GroupedLinks) []models.Category {
	active := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if !category.Enabled {
			continue
		}
		if len(grouped.ByCategory[category.Name]) == 0 {
			continue
		}

		subs := make([]models.SubCategory, 0, len(grouped.SubOrder[category.Name]))
		for _, name := range grouped.SubOrder[category.Name] {
			subs = append(subs, models.NewSubCategory(name))
		}
		category.SubCategories = subs
		active = append(active, category)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})

	return active
}
