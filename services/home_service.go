package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/navhub/navhub_backend/models"
)

// HomeService assembles the render-ready home page: the three upstream
// datasets fetched concurrently, normalized, filtered for the viewer,
// grouped and cached.
type HomeService struct {
	links *LinkService
	cache *RenderCache
}

func NewHomeService(links *LinkService, cache *RenderCache) *HomeService {
	return &HomeService{links: links, cache: cache}
}

func cacheScope(isAdmin bool) string {
	if isAdmin {
		return "admin"
	}
	return "public"
}

// GetHomePage returns the aggregate for the viewer, optionally
// filtered by a search keyword. Unsearched requests are served from
// the render cache when possible; searched requests always recompute
// from a fresh fetch since the cached unit is the full render.
//
// Category and link fetch failures degrade to empty sections; a config
// fetch failure is fatal.
func (s *HomeService) GetHomePage(ctx context.Context, isAdmin bool, keyword string) (*models.HomePage, error) {
	cached := keyword == ""
	scope := cacheScope(isAdmin)

	if cached {
		if page, ok := s.cache.Get(ctx, scope); ok {
			return page, nil
		}
	}

	// The three dataset reads are independent; issue them together
	// and join before normalization proceeds. Pagination inside each
	// fetch stays sequential.
	var (
		wg         sync.WaitGroup
		categories []models.Category
		links      []models.Link
		siteConfig models.WebsiteConfig
		catErr     error
		linkErr    error
		configErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		categories, catErr = s.links.GetCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		links, linkErr = s.links.GetLinks(ctx)
	}()
	go func() {
		defer wg.Done()
		siteConfig, configErr = s.links.GetWebsiteConfig(ctx)
	}()
	wg.Wait()

	if configErr != nil {
		return nil, fmt.Errorf("home aggregation failed: %w", configErr)
	}
	if catErr != nil {
		log.Printf("Warning: categories fetch failed, rendering without them: %v", catErr)
		categories = []models.Category{}
	}
	if linkErr != nil {
		log.Printf("Warning: links fetch failed, rendering without them: %v", linkErr)
		links = []models.Link{}
	}

	enabledNames := make(map[string]bool, len(categories))
	for _, category := range categories {
		if category.Enabled {
			enabledNames[category.Name] = true
		}
	}

	visible := FilterByVisibility(links, isAdmin)
	visible = FilterBySearch(visible, keyword)
	grouped := GroupByCategory(visible, enabledNames)

	page := &models.HomePage{
		Config:      siteConfig,
		Categories:  DeriveActiveCategories(categories, grouped),
		Links:       grouped.ByCategory,
		GeneratedAt: time.Now(),
	}

	if cached {
		s.cache.Set(ctx, scope, page)
	}
	return page, nil
}
