package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/navhub/navhub_backend/models"
)

const (
	notionBaseURL    = "https://api.notion.com/v1/"
	notionAPIVersion = "2022-06-28"
)

// NotionService handles interactions with the upstream Notion API:
// paginated dataset queries, database metadata retrieval and the
// single write path (page creation). No retries; a failed page aborts
// the whole fetch.
type NotionService struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewNotionService creates a new Notion service instance.
func NewNotionService(token string) *NotionService {
	return &NotionService{
		baseURL: notionBaseURL,
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewNotionServiceWithBaseURL is NewNotionService with an explicit API
// base, for pointing the client at a stand-in server.
func NewNotionServiceWithBaseURL(token, baseURL string) *NotionService {
	svc := NewNotionService(token)
	svc.baseURL = baseURL
	return svc
}

// makeRequest performs one HTTP request against the Notion API and
// decodes the JSON response into out.
func (s *NotionService) makeRequest(ctx context.Context, method, endpoint string, payload interface{}, out interface{}) error {
	if s.token == "" {
		return fmt.Errorf("missing NOTION_TOKEN: %w", models.ErrServerMisconfigured)
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Notion-Version", notionAPIVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %v: %w", endpoint, err, models.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %v: %w", endpoint, err, models.ErrSourceUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned %d for %s: %w", resp.StatusCode, endpoint, models.ErrSourceUnavailable)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response from %s: %v: %w", endpoint, err, models.ErrSourceUnavailable)
		}
	}

	return nil
}

// QueryDatabase retrieves every record of a dataset, transparently
// following pagination cursors until the upstream reports no more
// pages. Zero results is a valid outcome, not an error.
func (s *NotionService) QueryDatabase(ctx context.Context, databaseID string, query models.NotionQueryRequest) ([]models.NotionPage, error) {
	endpoint := fmt.Sprintf("databases/%s/query", databaseID)

	allPages := []models.NotionPage{}
	for {
		var page models.NotionQueryResponse
		if err := s.makeRequest(ctx, http.MethodPost, endpoint, query, &page); err != nil {
			return nil, err
		}

		allPages = append(allPages, page.Results...)

		if !page.HasMore || page.NextCursor == "" {
			return allPages, nil
		}
		query.StartCursor = page.NextCursor
	}
}

// RetrieveDatabase fetches database-level metadata; the caller reads
// the icon to resolve the site favicon.
func (s *NotionService) RetrieveDatabase(ctx context.Context, databaseID string) (*models.NotionDatabase, error) {
	var database models.NotionDatabase
	if err := s.makeRequest(ctx, http.MethodGet, "databases/"+databaseID, nil, &database); err != nil {
		return nil, err
	}
	return &database, nil
}

// createPageRequest is the body of the page-creation write path.
type createPageRequest struct {
	Parent     pageParent                       `json:"parent"`
	Properties map[string]models.NotionProperty `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type createPageResponse struct {
	ID string `json:"id"`
}

// CreatePage appends one record to the given dataset and returns the
// id assigned upstream. The append is non-transactional; concurrent
// creates never conflict and are not deduplicated.
func (s *NotionService) CreatePage(ctx context.Context, databaseID string, properties map[string]models.NotionProperty) (string, error) {
	payload := createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: properties,
	}

	var created createPageResponse
	if err := s.makeRequest(ctx, http.MethodPost, "pages", payload, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
