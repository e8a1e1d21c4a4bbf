package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/controllers"
	"github.com/navhub/navhub_backend/middleware"
)

// RegisterLinkRoutes sets up the link read and write endpoints plus
// the admin-only helpers that support the add-link flow.
func RegisterLinkRoutes(e *echo.Echo, cfg *config.Config, linkController *controllers.LinkController, metaController *controllers.MetaController, syncController *controllers.SyncController) {
	// Public reads; visibility filtering happens at render time.
	e.GET("/api/links", linkController.GetLinks)

	// Admin-gated writes.
	admin := e.Group("/api")
	admin.Use(middleware.RequireAdmin(cfg.JWTSecret))

	admin.POST("/links", linkController.CreateLink)
	admin.POST("/fetch-meta", metaController.FetchMeta)
	admin.POST("/revalidate", syncController.Revalidate)
}
