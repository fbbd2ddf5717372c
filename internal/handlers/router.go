package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the video resources and the middleware stack.
func NewRouter(h *VideoHandler, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		RequestID(),
		RequestLogger(logger),
		Recovery(logger),
		CorsSettings(allowedOrigins),
	)

	router.GET(collectionPath, h.ListVideos)
	router.POST(collectionPath, h.CreateVideo)

	item := router.Group(collectionPath+"/:id", h.RequireVideoID)
	item.GET("", h.GetVideo)
	item.PUT("", h.UpdateVideo)
	item.DELETE("", h.DeleteVideo)

	router.NoMethod(h.MethodNotAllowed)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}

// RequestID tags every request with the caller's X-Request-ID or a fresh UUID
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs every served request once it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request served",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.String("request_id", c.GetString("requestID")),
			slog.Duration("latency", time.Since(start)))
	}
}

// Recovery turns a handler panic into a 500 instead of a dropped connection.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
