package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/masterblog/masterblog-api/handlers"
	"github.com/masterblog/masterblog-api/internal/config"
	"github.com/masterblog/masterblog-api/internal/post/handler"
	"github.com/masterblog/masterblog-api/internal/post/repository"
	"github.com/masterblog/masterblog-api/internal/post/service"
	"github.com/masterblog/masterblog-api/pkg/logger"
	"github.com/masterblog/masterblog-api/pkg/metrics"
	"github.com/masterblog/masterblog-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: storage=%s static=%s rate_limit=%v", cfg.Storage.File, cfg.Server.StaticDir, cfg.RateLimit.Enabled)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	// Post store and service: the JSON file owns all post records
	store := repository.NewFileStore(cfg.Storage.File)
	svc := service.New(store)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when the storage file is loadable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"storage": true}
		if _, err := store.Load(); err != nil {
			logger.Warnf("readiness: storage not loadable: %v", err)
			deps["storage"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// Swagger UI + JSON for API documentation
	handlers.RegisterSwagger(r)

	// Post CRUD, search and sort endpoints
	handler.RegisterPostRoutes(r, svc)

	// Static frontend, when present
	if cfg.Server.StaticDir != "" {
		if st, err := os.Stat(cfg.Server.StaticDir); err == nil && st.IsDir() {
			r.Static("/static", cfg.Server.StaticDir)
			if _, err := os.Stat(filepath.Join(cfg.Server.StaticDir, "index.html")); err == nil {
				r.StaticFile("/", filepath.Join(cfg.Server.StaticDir, "index.html"))
			}
		} else {
			logger.Debugf("static dir %s not found, skipping frontend hosting", cfg.Server.StaticDir)
		}
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting masterblog API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
