package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ceslar/internal/authz"
	"ceslar/internal/cache"
	"ceslar/internal/config"
	"ceslar/internal/database"
	"ceslar/internal/handler"
	"ceslar/internal/queue"
	"ceslar/internal/repository"
	"ceslar/internal/router"
	"ceslar/internal/service"
	"ceslar/internal/storage"
	"ceslar/internal/telemetry"
	"ceslar/internal/validator"
	"ceslar/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
)

// @title           CESLAR API
// @version         1.0
// @description     Multi-tenant church management API: churches, members, events, sermons, ministries and contact questions.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	telemetry.SetupLogger(cfg.LogFormat, cfg.LogLevel)

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		slog.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client, err := storage.NewS3Client(ctx, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		slog.Error("failed to configure s3", "error", err)
		os.Exit(1)
	}

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	churchRepo := repository.NewChurchRepository(mongoDB.Database)
	eventRepo := repository.NewEventRepository(mongoDB.Database)
	sermonRepo := repository.NewSermonRepository(mongoDB.Database)
	ministryRepo := repository.NewMinistryRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	questionRepo := repository.NewQuestionRepository(mongoDB.Database)

	// Authorization
	claimsResolver := authz.NewClaimsResolver(userRepo, membershipRepo, redisCache, cfg.ClaimsCacheTTL)

	// Service layer
	churchService := service.NewChurchService(churchRepo, redisCache, s3Client)

	// Stats queue and processor (church service persists the recounts)
	statsQueue := queue.NewMemoryQueue(100)
	statsProcessor := queue.NewProcessor(statsQueue, queue.Counters{
		Members: membershipRepo.CountActive,
		Events:  eventRepo.CountPublished,
		Sermons: sermonRepo.CountPublished,
	}, churchService, cfg.StatsWorkers)

	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, claimsResolver)
	eventService := service.NewEventService(eventRepo, statsProcessor, s3Client)
	sermonService := service.NewSermonService(sermonRepo, statsProcessor, s3Client)
	ministryService := service.NewMinistryService(ministryRepo, s3Client)
	membershipService := service.NewMembershipService(service.MembershipServiceConfig{
		Repo:     membershipRepo,
		Churches: churchRepo,
		Users:    userRepo,
		Claims:   claimsResolver,
		Stats:    statsProcessor,
	})
	questionService := service.NewQuestionService(questionRepo, churchRepo)
	uploadService := service.NewUploadService(churchRepo, s3Client)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        handler.NewAuthHandler(authService),
		UserHandler:        handler.NewUserHandler(userService),
		ChurchHandler:      handler.NewChurchHandler(churchService),
		EventHandler:       handler.NewEventHandler(eventService),
		SermonHandler:      handler.NewSermonHandler(sermonService),
		MinistryHandler:    handler.NewMinistryHandler(ministryService),
		MembershipHandler:  handler.NewMembershipHandler(membershipService),
		QuestionHandler:    handler.NewQuestionHandler(questionService),
		UploadHandler:      handler.NewUploadHandler(uploadService),
		HealthHandler:      handler.NewHealthHandler(mongoDB),
		TokenManager:       jwtManager,
		ClaimsResolver:     claimsResolver,
		RateLimiter:        redis_rate.NewLimiter(redisCache.Client()),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsEnabled:     cfg.MetricsEnabled,
	})

	// Start stats processor
	statsProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", "error", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop stats processor (waits for workers)
	slog.Info("stopping stats processor")
	statsProcessor.Stop()

	slog.Info("server shutdown complete")
}
