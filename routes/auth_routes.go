package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/controllers"
)

// RegisterAuthRoutes sets up the session lifecycle endpoints.
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	auth := e.Group("/api/auth")

	auth.GET("/check", authController.Check)
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout)
}
