package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	_ "portfolio-core/docs"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/config"
	"portfolio-core/internal/content"
	"portfolio-core/internal/domain/assistant"
	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/github"
	infraGitHub "portfolio-core/internal/infrastructure/github"
	"portfolio-core/internal/infrastructure/rag"
	"portfolio-core/internal/logging"
	"portfolio-core/internal/middleware"
	"portfolio-core/internal/presentation/handlers"
	"portfolio-core/internal/presentation/router"
	"portfolio-core/internal/presentation/web"
)

// @title Portfolio Core API
// @version 1.0
// @description Portfolio site with a GitHub project browser and a resume assistant proxy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey WallSession
// @in header
// @name Authorization
// @description Wall session token issued by /wall/unlock

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New("portfolio", cfg.Log)

	// Domain events
	dispatcher := events.NewDispatcher(logger.Named("events"))
	eventLog := events.LogHandler(logger.Named("events"))
	dispatcher.Register(repo.EventTypeRepositoriesLoaded, eventLog)
	dispatcher.Register(assistant.EventTypeDocumentIngested, eventLog)

	// External service clients
	githubClient := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout)
	ragClient := rag.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, logger.Named("rag"))

	// Infrastructure implementations of domain interfaces
	repoSource := infraGitHub.NewRepositorySource(githubClient, cfg.GitHub.Username, logger.Named("github"))
	cachedSource := infraGitHub.NewCachedSource(repoSource, repoSource.Owner(), cfg.GitHub.CacheTTL,
		infraGitHub.WithPublisher(dispatcher),
		infraGitHub.WithFetchTimeout(cfg.GitHub.Timeout),
		infraGitHub.WithLogger(logger.Named("github")),
	)

	// Application services (use cases)
	repositoryService := service.NewRepositoryService(cachedSource, logger.Named("browser"))
	assistantService := service.NewAssistantService(ragClient, dispatcher, cfg.Wall.MaxUploadBytes, logger.Named("assistant"))
	wallService := service.NewWallService(cfg.Wall.Passcode)
	if !wallService.Enabled() {
		logger.Warn("WALL_PASSCODE not set, document uploads are disabled")
	}

	wallAuth, err := middleware.NewWallAuth(cfg.Wall, logger.Named("wall"))
	if err != nil {
		logger.Error("failed to initialize wall auth", "error", err)
		os.Exit(1)
	}

	templates, err := web.Templates(cfg.Site.TemplatesPath)
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// HTTP handlers
	site := content.Default(cfg.Site.OwnerName)
	httpLogger := logger.Named("http")
	h := router.Handlers{
		Health: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"github": githubClient,
			"rag":    ragClient,
		}),
		Repository: handlers.NewRepositoryHandler(repositoryService),
		Assistant:  handlers.NewAssistantHandler(assistantService, httpLogger),
		Page:       handlers.NewPageHandler(repositoryService, site, httpLogger),
		Wall:       handlers.NewWallHandler(wallService, assistantService, wallAuth, site, cfg.Wall.MaxUploadBytes, httpLogger),
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(h, wallAuth, templates, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBodyBytes:   cfg.Wall.MaxUploadBytes,
		AccessLog:      true,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ErrorLog:     httpLogger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true}),
	}

	// Warm the repository cache so the first visitor does not wait on GitHub
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.GitHub.Timeout)
		defer cancel()
		if _, err := cachedSource.ListRepositories(ctx); err != nil {
			logger.Warn("initial repository fetch failed", "error", err)
		}
	}()

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "addr", cfg.GetServerAddress(), "github_user", cfg.GitHub.Username)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
