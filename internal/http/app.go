// Package http provides HTTP server infrastructure including engine assembly.
package http

import (
	"net/http"

	"secop_portal_backend/platform/config"
	"secop_portal_backend/platform/httpkit"
	"secop_portal_backend/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to NewEngine.
type App struct {
	// Config holds the HTTP server configuration.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}

// NewEngine builds the Gin engine with shared middleware and registers
// every module's routes under /api/v1.
func NewEngine(app *App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app.Config))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx := &RouterContext{
		Engine:            engine,
		V1:                engine.Group("/api/v1"),
		ExportRateLimiter: httpkit.NewExportRateLimiter(app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(cfg config.HTTPConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{"Content-Disposition", httpkit.RequestIDHeader}
	return cors.New(corsCfg)
}
