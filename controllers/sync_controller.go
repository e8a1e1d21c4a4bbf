package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
)

// SyncController exposes the admin-only cache invalidation trigger.
type SyncController struct {
	cache *services.RenderCache
}

func NewSyncController(cache *services.RenderCache) *SyncController {
	return &SyncController{cache: cache}
}

// Revalidate marks the cached render output stale and records the
// trigger time. It does not re-fetch; the next read does that lazily.
func (sc *SyncController) Revalidate(c echo.Context) error {
	revalidatedAt, err := sc.cache.Invalidate(c.Request().Context())
	if err != nil {
		log.Printf("Failed to invalidate render cache: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Sync failed, please try again later",
		})
	}

	return c.JSON(http.StatusOK, models.RevalidateResponse{
		Success:       true,
		Message:       "Sync successful, page cache refreshed",
		RevalidatedAt: revalidatedAt.Format(time.RFC3339),
	})
}
