package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
)

// HotNewsController serves the trending-topics widget feed.
type HotNewsController struct {
	hotNews *services.HotNewsService
}

func NewHotNewsController(hotNews *services.HotNewsService) *HotNewsController {
	return &HotNewsController{hotNews: hotNews}
}

// GetHotNews returns the current trending items.
func (hc *HotNewsController) GetHotNews(c echo.Context) error {
	items, err := hc.hotNews.GetHotNews(c.Request().Context())
	if err != nil {
		log.Printf("Failed to fetch hot news: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch hot news",
		})
	}
	return c.JSON(http.StatusOK, models.HotNewsResponse{
		Success: true,
		Items:   items,
	})
}
