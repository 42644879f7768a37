package main

import (
	"log/slog"

	"tourmate/internal/concierge"
	"tourmate/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	conciergeService concierge.Service
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:           router,
		logger:           logger,
		conciergeService: concierge.NewService(cfg, logger),
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
