package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farmcycle/waste-portal/waste-portal-backend/internal/analysis"
	"farmcycle/waste-portal/waste-portal-backend/internal/certificates"
	"farmcycle/waste-portal/waste-portal-backend/internal/classifier"
	"farmcycle/waste-portal/waste-portal-backend/internal/config"
	"farmcycle/waste-portal/waste-portal-backend/internal/engine"
)

func main() {
	// Load .env if present, then config file + env overrides
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "development" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize the recommendation engine
	eng, err := engine.New(logger, engine.Options{
		DefaultLocation: cfg.Engine.DefaultLocation,
		DefaultTier:     engine.PriceTier(cfg.Engine.DefaultTier),
		Currency:        cfg.Engine.Currency,
	})
	if err != nil {
		logger.Fatal("Failed to initialize engine", zap.Error(err))
	}

	// History and certificates live in Postgres when configured,
	// otherwise in memory
	var (
		analysisRepo analysis.Repository = analysis.NewMemoryRepository()
		certRepo     certificates.Repository = certificates.NewMemoryRepository()
	)
	if cfg.Database.Host != "" {
		dbURL := cfg.Database.GetDatabaseURL()
		logger.Info("Connecting to database", zap.String("host", cfg.Database.Host))
		db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		analysisRepo, err = analysis.NewPostgresRepository(db)
		if err != nil {
			logger.Fatal("Failed to set up analysis store", zap.Error(err))
		}
		certRepo, err = certificates.NewPostgresRepository(db)
		if err != nil {
			logger.Fatal("Failed to set up certificate store", zap.Error(err))
		}
	} else {
		logger.Info("No database configured, using in-memory stores")
	}

	analysisService := analysis.NewService(analysisRepo, logger, cfg.Engine.CreditValue)
	analysisHandler := analysis.NewHandler(analysisService, logger)

	certService := certificates.NewService(certRepo, logger)
	certHandler := certificates.NewHandler(certService, logger)

	engineHandler := engine.NewHandler(eng, logger)
	imageHandler := classifier.NewImageHandler(classifier.NewImageModel(eng), logger)

	// Setup Router
	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register Routes
	api := router.Group("/api/v1")
	{
		engineHandler.RegisterRoutes(api)
		imageHandler.RegisterRoutes(api)
		analysisHandler.RegisterRoutes(api)
		certHandler.RegisterRoutes(api)
	}

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Periodic platform stats snapshot
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		total, err := analysisService.PlatformTotals(ctx)
		if err != nil {
			logger.Warn("Failed to snapshot platform totals", zap.Error(err))
			return
		}
		logger.Info("Platform stats snapshot", zap.Int64("total_analyses", total))
	})
	if err != nil {
		logger.Fatal("Failed to schedule stats snapshot", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start Server
	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(fmt.Sprintf("listen: %s", err), zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.Int("port", cfg.Server.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", zap.Error(err))
	}

	logger.Info("Server exiting")
}
