package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/controllers"
	"github.com/navhub/navhub_backend/services"
)

// SetupRoutes registers the public read endpoints and the health
// probes.
func SetupRoutes(e *echo.Echo, renderCache *services.RenderCache, configController *controllers.ConfigController, homeController *controllers.HomeController, hotNewsController *controllers.HotNewsController) {
	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Navhub Backend is running",
			"version": "1.0",
		})
	})

	// The health probe also reports when the render cache was last
	// invalidated, if a sync has happened since the cache was filled.
	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		health := map[string]string{
			"status": "healthy",
		}
		if lastSync, ok := renderCache.LastSync(c.Request().Context()); ok {
			health["last_sync"] = lastSync.Format(time.RFC3339)
		}
		return c.JSON(http.StatusOK, health)
	})

	e.GET("/api/config", configController.GetConfig)
	e.GET("/api/home", homeController.GetHome)
	e.GET("/api/hot-news", hotNewsController.GetHotNews)
}
