package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
)

// ConfigController serves the merged site configuration.
type ConfigController struct {
	links *services.LinkService
}

func NewConfigController(links *services.LinkService) *ConfigController {
	return &ConfigController{links: links}
}

// GetConfig returns the site configuration map merged with the
// enabled category names. A config fetch failure is fatal; a category
// fetch failure degrades to an empty list.
func (cc *ConfigController) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	siteConfig, err := cc.links.GetWebsiteConfig(ctx)
	if err != nil {
		log.Printf("Failed to fetch website config: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch website config",
		})
	}

	categories, err := cc.links.GetCategories(ctx)
	if err != nil {
		log.Printf("Warning: categories fetch failed for config: %v", err)
		categories = []models.Category{}
	}

	merged := make(map[string]interface{}, len(siteConfig)+1)
	for key, value := range siteConfig {
		merged[key] = value
	}
	names := make([]map[string]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, map[string]string{"name": category.Name})
	}
	merged["categories"] = names

	return c.JSON(http.StatusOK, merged)
}
