package config

import (
	"os"
	"strconv"
)

// Config holds all environment-driven settings. Load is called once
// from main after godotenv has populated the process environment.
type Config struct {
	Port string

	// Admin credentials; both must be set for login to work.
	AdminName string
	AdminPwd  string

	// JWTSecret signs session tokens.
	JWTSecret string

	// Upstream content store connection parameters.
	NotionToken           string
	NotionLinksDBID       string
	NotionCategoriesDBID  string
	NotionWebsiteConfigID string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// PinnedTag is the tag value that forces a link to sort first.
	PinnedTag string

	// HotNewsAPIURL is the optional upstream trending-topics feed.
	HotNewsAPIURL string
}

// Load reads the configuration from environment variables, applying
// defaults where documented. Missing secrets are not fatal here; the
// endpoints that need them report a configuration error instead.
func Load() *Config {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		AdminName:             os.Getenv("ADMIN_NAME"),
		AdminPwd:              os.Getenv("ADMIN_PWD"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		NotionToken:           os.Getenv("NOTION_TOKEN"),
		NotionLinksDBID:       os.Getenv("NOTION_LINKS_DB_ID"),
		NotionCategoriesDBID:  os.Getenv("NOTION_CATEGORIES_DB_ID"),
		NotionWebsiteConfigID: os.Getenv("NOTION_WEBSITE_CONFIG_ID"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		PinnedTag:             getEnv("PINNED_TAG", "pinned"),
		HotNewsAPIURL:         os.Getenv("HOT_NEWS_API_URL"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
