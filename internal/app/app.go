package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidmintHTTP "vidmint/internal/controller/http"
	"vidmint/internal/repo/persistent"
	"vidmint/internal/usecase"
	"vidmint/pkg/config"
	"vidmint/pkg/jwt"
	"vidmint/pkg/logger"
	"vidmint/pkg/middleware"
	"vidmint/pkg/queue"
	"vidmint/pkg/s3"
	"vidmint/pkg/videy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidmint/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to connect to S3: %v", err)
		panic(err)
	}

	videyClient := videy.NewClient(cfg.VideyUploadURL)

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		// Mail delivery degrades to nothing, the API stays up
		log.Warn("RabbitMQ unavailable, email notifications disabled: %v", err)
		queueClient = nil
	}

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	folderRepo := persistent.NewFolderRepository(db)
	payoutRepo := persistent.NewPayoutRepository(db)
	viewRepo := persistent.NewViewRepository(db)
	sessionRepo := persistent.NewSessionRepository(db)
	settingsRepo := persistent.NewSettingsRepository(db, cfg.DefaultCPM)
	adminRepo := persistent.NewAdminRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, adminRepo, sessionRepo, jwtService, queueClient, log, cfg.BaseURL)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, folderRepo, viewRepo, videyClient, s3Client, log)
	folderUseCase := usecase.NewFolderUseCase(folderRepo, log)
	payoutUseCase := usecase.NewPayoutUseCase(payoutRepo, videoRepo, userRepo, queueClient, log)
	viewUseCase := usecase.NewViewUseCase(videoRepo, viewRepo, settingsRepo, log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, sessionRepo, settingsRepo, log)

	// Initialize HTTP handlers
	authHandler := vidmintHTTP.NewAuthHandler(authUseCase, log)
	videoHandler := vidmintHTTP.NewVideoHandler(videoUseCase, log)
	folderHandler := vidmintHTTP.NewFolderHandler(folderUseCase, log)
	payoutHandler := vidmintHTTP.NewPayoutHandler(payoutUseCase, log)
	viewHandler := vidmintHTTP.NewViewHandler(viewUseCase, log)
	adminHandler := vidmintHTTP.NewAdminHandler(adminUseCase, payoutUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public endpoints: registration, login, email verification, and the
	// view/like counters embedded players call without credentials.
	public := r.Group("/api/v1")
	public.Use(middleware.RateLimitMiddleware(redisClient, 60, time.Minute))
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/admin/login", authHandler.AdminLogin)
		public.GET("/auth/verify-email", authHandler.VerifyEmail)

		public.POST("/videos/:id/view", viewHandler.TrackView)
		public.POST("/videos/:id/like", videoHandler.LikeVideo)
		public.POST("/videos/:id/dislike", videoHandler.DislikeVideo)
	}

	// Creator API
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService, sessionRepo))
	api.Use(middleware.RateLimitMiddleware(redisClient, 120, time.Minute))
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/resend-verification", authHandler.ResendVerification)
		api.GET("/auth/sessions", authHandler.ListSessions)
		api.DELETE("/auth/sessions/:id", authHandler.RevokeSession)

		api.POST("/videos", videoHandler.CreateVideo)
		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/:id", videoHandler.GetVideo)
		api.PUT("/videos/:id", videoHandler.UpdateVideo)
		api.DELETE("/videos/:id", videoHandler.DeleteVideo)
		api.POST("/videos/:id/thumbnail", videoHandler.UploadThumbnail)
		api.GET("/videos/:id/stats", videoHandler.GetVideoStats)

		api.POST("/folders", folderHandler.CreateFolder)
		api.GET("/folders", folderHandler.ListFolders)
		api.GET("/folders/:id", folderHandler.GetFolder)
		api.PUT("/folders/:id", folderHandler.UpdateFolder)
		api.DELETE("/folders/:id", folderHandler.DeleteFolder)

		api.POST("/payouts", payoutHandler.RequestPayout)
		api.GET("/payouts", payoutHandler.ListPayouts)
		api.GET("/payouts/payment-method", payoutHandler.GetPaymentMethod)
		api.PUT("/payouts/payment-method", payoutHandler.SetPaymentMethod)
	}

	// Admin API
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AdminMiddleware(jwtService, sessionRepo))
	admin.Use(middleware.RateLimitMiddleware(redisClient, 120, time.Minute))
	{
		admin.POST("/logout", authHandler.Logout)
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/suspend", adminHandler.SuspendUser)
		admin.GET("/settings", adminHandler.GetSettings)
		admin.PUT("/settings/cpm", adminHandler.UpdateCPM)
		admin.GET("/payouts", adminHandler.ListAllPayouts)
		admin.PUT("/payouts/:id", adminHandler.DecidePayout)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Purge expired sessions hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessionRepo.DeleteExpired(); err != nil {
				log.Error("Failed to purge expired sessions: %v", err)
			}
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
