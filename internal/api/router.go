package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions controls how the Gin engine is assembled.
type RouterOptions struct {
	// Debug exposes the destructive /api/debug routes.
	Debug bool
	// AllowOrigin is the CORS origin handed to browsers. Empty means "*";
	// the dashboard UI is served from a different origin.
	AllowOrigin string
}

// NewRouter assembles the Gin engine with recovery, request logging, CORS
// and every API route.
func NewRouter(h *Handler, logger *zap.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), cors(opts.AllowOrigin))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/users", h.ListUsers)
		apiGroup.GET("/users/:id", h.GetUser)
		apiGroup.POST("/users", h.CreateUser)
		apiGroup.PUT("/users/:id", h.UpdateUser)
		apiGroup.DELETE("/users/:id", h.DeleteUser)

		apiGroup.POST("/login", h.Login)

		apiGroup.GET("/summary", h.GetSummary)
		apiGroup.GET("/usage", h.GetUsage)
		apiGroup.GET("/user-activity", h.GetUserActivity)
		apiGroup.GET("/anomalies", h.GetAnomalies)
		apiGroup.GET("/top-pages", h.GetTopPages)
		apiGroup.GET("/system-status", h.GetSystemStatus)

		if opts.Debug {
			apiGroup.POST("/debug/reset-logins", h.ResetLogins)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

// requestLogger logs one line per request with method, path, status and
// latency.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// cors allows the dashboard UI, served from another origin, to call the API.
func cors(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
