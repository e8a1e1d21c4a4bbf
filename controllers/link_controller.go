package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
	"github.com/navhub/navhub_backend/utils"
)

// LinkController serves the link dataset and the create-link write
// path.
type LinkController struct {
	links *services.LinkService
}

func NewLinkController(links *services.LinkService) *LinkController {
	return &LinkController{links: links}
}

// GetLinks returns the full normalized, sorted link list. Visibility
// filtering happens at render time, not here.
func (lc *LinkController) GetLinks(c echo.Context) error {
	links, err := lc.links.GetLinks(c.Request().Context())
	if err != nil {
		log.Printf("Failed to fetch links: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch links",
		})
	}
	return c.JSON(http.StatusOK, links)
}

// CreateLink appends a new link to the upstream store. The route is
// admin-gated by middleware; this handler validates the payload.
func (lc *LinkController) CreateLink(c echo.Context) error {
	var req models.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name and URL are required",
		})
	}
	if !utils.IsAbsoluteURL(req.URL) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "URL must be a valid absolute URL",
		})
	}

	id, err := lc.links.CreateLink(c.Request().Context(), req)
	if err != nil {
		log.Printf("Failed to create link: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create link, please try again later",
		})
	}

	return c.JSON(http.StatusOK, models.CreateLinkResponse{
		Success: true,
		Message: "Link added successfully",
		ID:      id,
	})
}
