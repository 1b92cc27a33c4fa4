package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinepulse/internal/api/config"
	delivery "cinepulse/internal/api/delivery/http"
	_ "cinepulse/internal/api/docs"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/api/service"
	"cinepulse/pkg/common"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/postgres"
	"cinepulse/pkg/ratelimit"
	"cinepulse/pkg/redis"
	"cinepulse/pkg/sentiment"
	"cinepulse/pkg/validator"
	"cinepulse/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the CinePulse API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting CinePulse API", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	// Initialize database
	postgresCfg := postgres.Config{
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis and the inbound rate limiter
	var limiter delivery.Limiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()

		if cfg.RateLimit.Enabled {
			limiter = ratelimit.NewWindowLimiter(redisClient.Client, common.RateLimitKeyPrefix, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	} else if cfg.RateLimit.Enabled {
		appLogger.Warn("Rate limiting requires Redis, requests will not be limited")
	}

	// Initialize Gemini client
	var models repository.ContentGenerator
	if cfg.Gemini.APIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to create genai client", logger.ErrorField(err))
		}
		models = client.Models
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, AI summaries disabled")
	}

	// Initialize sentiment models
	sources := make(map[sentiment.Language]sentiment.ModelSource, len(cfg.Sentiment.Models))
	for lang, m := range cfg.Sentiment.Models {
		sources[sentiment.Language(lang)] = sentiment.ModelSource{
			ArtifactPath: m.ArtifactPath,
			Endpoint:     m.Endpoint,
			Timeout:      m.Timeout,
		}
	}
	registry := sentiment.LoadRegistry(sources, appLogger)
	normalizer, err := sentiment.NewNormalizer(cfg.Sentiment.Aliases)
	if err != nil {
		appLogger.Fatal("Invalid sentiment aliases", logger.ErrorField(err))
	}

	// Initialize repositories
	reviewRepo := repository.NewMovieReviewRepository(db.DB)
	reviewSources := []repository.ReviewSource{repository.NewTMDBRepository(cfg.TMDB, appLogger)}
	if cfg.AdoroCinema.Enabled {
		reviewSources = append(reviewSources, repository.NewAdoroCinemaRepository(cfg.AdoroCinema, appLogger))
	}
	reviewSource := repository.NewCompositeSource(appLogger, reviewSources...)
	generator := repository.NewGeminiAIRepository(cfg.Gemini, appLogger, models)

	// Initialize services
	summarizerSvc := service.NewSummarizerService(generator, appLogger)
	analysisSvc := service.NewAnalysisService(reviewSource, registry, normalizer, summarizerSvc, cfg.Analysis, appLogger)
	reviewSvc := service.NewReviewService(reviewRepo, normalizer, cfg.Cache.TTL, appLogger)
	summarySvc := service.NewSummaryService(reviewRepo, normalizer, summarizerSvc, cfg.Analysis, appLogger)

	if cfg.Cache.WarmSchedule != "" {
		warmer := service.NewCacheWarmer(reviewSvc, cfg.Cache.WarmSchedule, appLogger)
		if err := warmer.Start(ctx); err != nil {
			appLogger.Fatal("Failed to start cache warmer", logger.ErrorField(err))
		}
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.API.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	var limited []echo.MiddlewareFunc
	if limiter != nil {
		limited = append(limited, delivery.RateLimit(limiter, appLogger))
	}

	// Initialize handlers and routes
	analysisHandler := delivery.NewAnalysisHandler(analysisSvc, appLogger)
	analysisHandler.RegisterRoutes(e.Group(""), limited...)

	api := e.Group("/api")
	reviewHandler := delivery.NewReviewHandler(reviewSvc, appLogger)
	reviewHandler.RegisterRoutes(api.Group("/reviews"))
	reviewHandler.RegisterCatalogueRoutes(api)

	summaryHandler := delivery.NewSummaryHandler(summarySvc, cfg.Gemini.APIKey, appLogger)
	summaryHandler.RegisterRoutes(api, limited...)

	delivery.NewStaticHandler(web.Assets).RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title CinePulse API
// @version 1.0
// @description Movie review aggregation, sentiment classification and AI summaries.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
