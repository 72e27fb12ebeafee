// Package server exposes the HTTP API over gin.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/ratelimit"
	"github.com/nguyentantai21042004/summary-flow/internal/service"
)

type Server struct {
	cfg     *config.Config
	svc     service.Service
	limiter *ratelimit.Limiter
	logger  logger.Logger
}

// New creates the HTTP server around the pipeline service.
func New(cfg *config.Config, svc service.Service, log logger.Logger) *Server {
	return &Server{
		cfg:     cfg,
		svc:     svc,
		limiter: ratelimit.New(cfg.RateLimit.Limit, time.Duration(cfg.RateLimit.Window)*time.Second),
		logger:  log,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		limited := api.Group("")
		if s.cfg.RateLimit.Enforce {
			limited.Use(s.rateLimit())
		}
		limited.POST("/summarize", s.handleSummarize)
		limited.POST("/chat", s.handleChat)
	}

	return r
}
