package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/navhub/navhub_backend/config"
	"github.com/navhub/navhub_backend/controllers"
	"github.com/navhub/navhub_backend/middleware"
	"github.com/navhub/navhub_backend/routes"
	"github.com/navhub/navhub_backend/services"
	"github.com/navhub/navhub_backend/utils"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// Connect to Redis; a failed connection disables caching but the
	// server still runs against the upstream store directly.
	redisClient := config.ConnectRedis(cfg)

	// Initialize services
	notionService := services.NewNotionService(cfg.NotionToken)
	linkService := services.NewLinkService(notionService, cfg)
	renderCache := services.NewRenderCache(redisClient)
	homeService := services.NewHomeService(linkService, renderCache)
	metaService := services.NewMetaService()
	hotNewsService := services.NewHotNewsService(cfg.HotNewsAPIURL, redisClient)

	// Create a new Echo instance
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	// Initialize controllers
	authController := controllers.NewAuthController(cfg)
	linkController := controllers.NewLinkController(linkService)
	configController := controllers.NewConfigController(linkService)
	homeController := controllers.NewHomeController(homeService, cfg)
	metaController := controllers.NewMetaController(metaService)
	syncController := controllers.NewSyncController(renderCache)
	hotNewsController := controllers.NewHotNewsController(hotNewsService)

	// Register routes
	routes.SetupRoutes(e, renderCache, configController, homeController, hotNewsController)
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterLinkRoutes(e, cfg, linkController, metaController, syncController)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
