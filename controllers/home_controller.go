package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/middleware"
	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
)

// HomeController serves the cached render-ready aggregate.
type HomeController struct {
	home *services.HomeService
	cfg  *config.Config
}

func NewHomeController(home *services.HomeService, cfg *config.Config) *HomeController {
	return &HomeController{home: home, cfg: cfg}
}

// GetHome returns the categories-with-links aggregate for the caller,
// optionally filtered by the `search` query parameter. The viewer
// scope (admin or anonymous) comes from the session cookie.
func (hc *HomeController) GetHome(c echo.Context) error {
	isAdmin := middleware.IsAdmin(c, hc.cfg.JWTSecret)
	keyword := c.QueryParam("search")

	page, err := hc.home.GetHomePage(c.Request().Context(), isAdmin, keyword)
	if err != nil {
		log.Printf("Failed to assemble home page: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load page data",
		})
	}
	return c.JSON(http.StatusOK, page)
}
