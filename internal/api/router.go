package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/le-brouillon/portal-api/internal/service"
	"github.com/le-brouillon/portal-api/internal/storage"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. objects may be nil when
// no storage credentials are configured; uploads then answer 503.
func NewRouter(services *service.Services, objects storage.ObjectStorage, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	submissionHandler := NewSubmissionHandler(services, log)
	calendarHandler := NewCalendarHandler(services, log)
	uploadHandler := NewUploadHandler(objects, cfg, log)
	authHandler := NewAuthHandler(cfg, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public portal endpoints
		v1.GET("/formats", submissionHandler.GetFormats)
		v1.GET("/calendar", calendarHandler.GetMonthView)
		v1.GET("/availability", calendarHandler.GetAvailability)
		v1.POST("/submissions", submissionHandler.CreateSubmission)
		v1.POST("/uploads", uploadHandler.CreateUpload)

		// Admin sign-in
		v1.POST("/auth/google", authHandler.GoogleSignIn)

		// Admin endpoints
		admin := v1.Group("/admin")
		admin.Use(adminAuthMiddleware(&cfg.Auth, log))
		{
			admin.GET("/submissions", adminHandler.ListSubmissions)
			admin.DELETE("/submissions/:id", adminHandler.DeleteSubmission)
			admin.GET("/occupied", adminHandler.ListOccupied)
			admin.POST("/blocked-dates", adminHandler.BlockDate)
			admin.DELETE("/blocked-dates/:id", adminHandler.UnblockDate)
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/format-settings", adminHandler.GetFormatSettings)
			admin.PUT("/format-settings", adminHandler.PutFormatSettings)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portal-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
