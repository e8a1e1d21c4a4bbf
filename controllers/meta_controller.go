package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/services"
)

// MetaController handles the admin-only page metadata scrape used to
// prefill the add-link form.
type MetaController struct {
	meta *services.MetaService
}

func NewMetaController(meta *services.MetaService) *MetaController {
	return &MetaController{meta: meta}
}

// FetchMeta scrapes the submitted URL for its title and icon.
func (mc *MetaController) FetchMeta(c echo.Context) error {
	var req models.FetchMetaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "URL is required",
		})
	}

	title, icon, err := mc.meta.FetchMeta(c.Request().Context(), req.URL)
	if err != nil {
		status := models.StatusFor(err)
		message := "Failed to fetch page metadata"
		if status == http.StatusBadRequest {
			message = "URL must be a valid absolute URL"
		} else {
			log.Printf("Failed to fetch page metadata: %v", err)
		}
		return c.JSON(status, models.Response{
			Status:  status,
			Message: message,
		})
	}

	return c.JSON(http.StatusOK, models.FetchMetaResponse{
		Success: true,
		Title:   title,
		Icon:    icon,
	})
}
