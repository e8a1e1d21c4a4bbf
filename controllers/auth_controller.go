package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/middleware"
	"github.com/navhub/navhub_backend/models"
	"github.com/navhub/navhub_backend/utils"
)

// AuthController handles the single-admin session lifecycle: login
// against the configured secrets, session check and logout.
type AuthController struct {
	cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

// Login verifies the submitted credentials against the configured
// admin secrets and, on an exact match of both, mints the session
// cookie.
func (ac *AuthController) Login(c echo.Context) error {
	var loginReq models.LoginRequest
	if err := c.Bind(&loginReq); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&loginReq); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Username and password are required",
		})
	}

	if ac.cfg.AdminName == "" || ac.cfg.AdminPwd == "" {
		status := models.StatusFor(models.ErrServerMisconfigured)
		return c.JSON(status, models.Response{
			Status:  status,
			Message: "Server configuration error",
		})
	}

	loginReq.Username = utils.SanitizeInput(loginReq.Username)

	if loginReq.Username != ac.cfg.AdminName || loginReq.Password != ac.cfg.AdminPwd {
		status := models.StatusFor(models.ErrInvalidCredentials)
		return c.JSON(status, models.Response{
			Status:  status,
			Message: "Invalid username or password",
		})
	}

	token, err := middleware.GenerateSessionToken(loginReq.Username, ac.cfg.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate session token",
		})
	}

	cookie := new(http.Cookie)
	cookie.Name = middleware.AuthCookieName
	cookie.Value = token
	cookie.Path = "/"
	cookie.MaxAge = int(middleware.SessionLifetime / time.Second)
	cookie.HttpOnly = true
	cookie.Secure = false // Set to true in production
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		IsAdmin: true,
		Message: "Login successful",
	})
}

// Check reports whether the caller holds a valid session credential.
func (ac *AuthController) Check(c echo.Context) error {
	if middleware.IsAdmin(c, ac.cfg.JWTSecret) {
		return c.JSON(http.StatusOK, models.CheckResponse{
			IsAdmin: true,
			Message: "Logged in",
		})
	}
	return c.JSON(http.StatusOK, models.CheckResponse{
		IsAdmin: false,
		Message: "Not logged in",
	})
}

// Logout clears the session cookie. It always succeeds, whether or
// not a credential was present.
func (ac *AuthController) Logout(c echo.Context) error {
	cookie := new(http.Cookie)
	cookie.Name = middleware.AuthCookieName
	cookie.Value = ""
	cookie.Path = "/"
	cookie.MaxAge = -1
	cookie.HttpOnly = true
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, models.LogoutResponse{
		Success: true,
		Message: "Logout successful",
	})
}
