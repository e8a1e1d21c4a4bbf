package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/navhub/navhub_backend/models"
)

const (
	hotNewsCacheKey = "hotnews:items"
	hotNewsCacheTTL = 15 * time.Minute
)

// HotNewsService proxies the configured trending-topics feed for the
// hot-news widget, with a short Redis cache so the widget's polling
// does not hammer the upstream feed.
type HotNewsService struct {
	apiURL string
	client *http.Client
	redis  *redis.Client
}

func NewHotNewsService(apiURL string, redisClient *redis.Client) *HotNewsService {
	return &HotNewsService{
		apiURL: apiURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		redis: redisClient,
	}
}

// hotNewsFeed accepts both `{"data": [...]}` and a bare item array.
type hotNewsFeed struct {
	Data []models.HotNewsItem `json:"data"`
}

// GetHotNews returns the current trending items. An unconfigured feed
// yields an empty list; a failing feed is a source error.
func (s *HotNewsService) GetHotNews(ctx context.Context) ([]models.HotNewsItem, error) {
	if s.apiURL == "" {
		return []models.HotNewsItem{}, nil
	}

	if items, ok := s.cachedItems(ctx); ok {
		return items, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hot news fetch failed: %v: %w", err, models.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("hot news feed returned %d: %w", resp.StatusCode, models.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read hot news feed: %v: %w", err, models.ErrSourceUnavailable)
	}

	items, err := decodeHotNews(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hot news feed: %v: %w", err, models.ErrSourceUnavailable)
	}

	s.storeItems(ctx, items)
	return items, nil
}

func decodeHotNews(body []byte) ([]models.HotNewsItem, error) {
	var feed hotNewsFeed
	if err := json.Unmarshal(body, &feed); err == nil && feed.Data != nil {
		return feed.Data, nil
	}

	var items []models.HotNewsItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *HotNewsService) cachedItems(ctx context.Context) ([]models.HotNewsItem, bool) {
	if s.redis == nil {
		return nil, false
	}
	data, err := s.redis.Get(ctx, hotNewsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.HotNewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *HotNewsService) storeItems(ctx context.Context, items []models.HotNewsItem) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, hotNewsCacheKey, data, hotNewsCacheTTL).Err(); err != nil {
		log.Printf("Warning: failed to cache hot news: %v", err)
	}
}
