package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/navhub/navhub_backend/models"
)

// browser UA; some sites refuse requests without one.
const metaUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// MetaService scrapes a target page for its title and icon, used to
// prefill the add-link form.
type MetaService struct {
	client *http.Client
}

func NewMetaService() *MetaService {
	return &MetaService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchMeta fetches the page and extracts, best effort, the <title>
// text and an icon URL: rel=icon / shortcut icon first, then
// apple-touch-icon, else {origin}/favicon.ico. Relative icon paths are
// resolved against the target's origin.
func (s *MetaService) FetchMeta(ctx context.Context, rawURL string) (string, string, error) {
	target, err := url.Parse(rawURL)
	if err != nil || !target.IsAbs() {
		return "", "", fmt.Errorf("invalid url %q: %w", rawURL, models.ErrValidation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", metaUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch %s: %v: %w", rawURL, err, models.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse %s: %v: %w", rawURL, err, models.ErrSourceUnavailable)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	icon := findIconHref(doc, "icon", "shortcut icon")
	if icon == "" {
		icon = findIconHref(doc, "apple-touch-icon")
	}

	origin := target.Scheme + "://" + target.Host
	if icon == "" {
		return title, origin + "/favicon.ico", nil
	}
	return title, resolveIconURL(target, icon, origin), nil
}

// findIconHref returns the href of the first <link> whose rel matches
// one of the given values, case-insensitively.
func findIconHref(doc *goquery.Document, rels ...string) string {
	var href string
	doc.Find("link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel := strings.ToLower(strings.TrimSpace(sel.AttrOr("rel", "")))
		for _, want := range rels {
			if rel == want {
				href = strings.TrimSpace(sel.AttrOr("href", ""))
				return href == ""
			}
		}
		return true
	})
	return href
}

// resolveIconURL turns protocol-relative, absolute-path and bare
// relative hrefs into absolute URLs against the target's origin.
func resolveIconURL(target *url.URL, icon, origin string) string {
	switch {
	case strings.HasPrefix(icon, "//"):
		return target.Scheme + ":" + icon
	case strings.HasPrefix(icon, "/"):
		return origin + icon
	case !strings.HasPrefix(icon, "http"):
		return origin + "/" + icon
	}
	return icon
}
