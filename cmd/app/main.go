package main

import (
	"vidmint/internal/app"
	"vidmint/pkg/cache"
	"vidmint/pkg/config"
	"vidmint/pkg/database"
	"vidmint/pkg/logger"
)

// @title           Vidmint API
// @version         1.0
// @description     Video hosting and monetization platform. Creators upload videos, earn per unique view, and request payouts.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, redisClient)
}
