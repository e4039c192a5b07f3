package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leadmatch/internal/client"
	"leadmatch/internal/config"
	"leadmatch/internal/handlers"
	"leadmatch/internal/matcher"
	"leadmatch/internal/middleware"
	"leadmatch/internal/phone"
	"leadmatch/internal/report"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Starting lead match service")

	// Initialize components
	leadsClient := client.NewLeadsClient(cfg, logger)
	phones := phone.NewNormalizer(cfg.DefaultCountryCode)
	leadMatcher := matcher.New(phones)
	reports := report.NewBuilder(logger)

	// Initialize handlers
	handler := handlers.New(cfg, leadsClient, phones, leadMatcher, reports, logger)

	// Setup Gin router
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// Health endpoint
	router.GET("/healthz", handler.HealthCheck)

	// Auth endpoints
	router.POST("/api/auth/login", handler.Login)
	router.POST("/api/auth/logout", handler.Logout)

	// Matching endpoint, gated by the session cookie
	protected := router.Group("/api", middleware.RequireAuth())
	protected.POST("/leads/match", handler.MatchLeads)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
