package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"openmusic/cmd/access-service/internal/domain"
	"openmusic/cmd/access-service/internal/service"
	"openmusic/pkg/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPServer carries the service's operational surface: liveness,
// readiness, and the internal access-decision endpoint the gateway calls.
// Record-API routing (albums, songs, playlists CRUD) lives in the
// surrounding backend, not here.
type HTTPServer struct {
	engine  *gin.Engine
	service *service.AccessService
	db      *sql.DB
	cache   *cache.RedisCache
	logger  *zap.Logger
}

// NewHTTPServer creates the HTTP server.
func NewHTTPServer(svc *service.AccessService, db *sql.DB, c *cache.RedisCache, logger *zap.Logger) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	s := &HTTPServer{
		engine:  engine,
		service: svc,
		db:      db,
		cache:   c,
		logger:  logger,
	}

	engine.Use(gin.Recovery())
	engine.Use(s.requestLogger())

	engine.GET("/health", s.handleHealth)
	engine.GET("/ready", s.handleReady)

	internal := engine.Group("/internal")
	internal.GET("/playlists/:playlistId/access/:userId", s.handleResolve)
	internal.GET("/albums/:albumId/likes", s.handleAlbumLikes)

	return s
}

// Engine exposes the gin engine for http.Server wiring.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *HTTPServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReady verifies both shared stores. A cache outage is reported but
// does not fail readiness: the like path degrades to source reads.
func (s *HTTPServer) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("Readiness check failed: database", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}

	resp := gin.H{"status": "ready"}
	if err := s.cache.Ping(ctx); err != nil {
		s.logger.Warn("Readiness check: cache unreachable, degraded mode", zap.Error(err))
		resp["cache"] = "degraded"
	}

	c.JSON(http.StatusOK, resp)
}

// handleResolve answers "may this actor act on this playlist" for the
// gateway. Absence outcomes are part of the decision, not errors.
func (s *HTTPServer) handleResolve(c *gin.Context) {
	ownerOnly := c.Query("owner_only") == "true"

	var (
		decision domain.Decision
		err      error
	)
	if ownerOnly {
		decision, err = s.service.ResolveOwner(c.Request.Context(), c.Param("playlistId"), c.Param("userId"))
	} else {
		decision, err = s.service.ResolveAccess(c.Request.Context(), c.Param("playlistId"), c.Param("userId"))
	}
	if err != nil {
		s.logger.Error("Access resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"decision": decision.String()})
}

func (s *HTTPServer) handleAlbumLikes(c *gin.Context) {
	count, err := s.service.GetAlbumLikes(c.Request.Context(), c.Param("albumId"))
	if err != nil {
		s.logger.Error("Like count read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "like count read failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": count.Count, "cache": count.FromCache})
}
