package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suraj274001/bulk-image-renamer/internal/config"
	"github.com/suraj274001/bulk-image-renamer/internal/handler"
)

const requestIDHeader = "X-Request-Id"

// SetupRouter assembles the gin engine: middleware, upload memory cap
// and route registration.
func SetupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestID())
	router.Use(accessLog(log))
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	rename := handler.NewRenameHandler(cfg.OutputDir, log)
	router.POST("/rename", rename.Rename)
	router.GET("/healthz", handler.Health)

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("requestID", id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("id", c.GetString("requestID")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}
