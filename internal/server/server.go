// Package server exposes the scorers over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/styleguard/internal/document"
	"github.com/hyperifyio/styleguard/internal/rules"
)

// DefaultMaxBodyBytes caps request bodies. Drafts are a few thousand words.
const DefaultMaxBodyBytes = 2 << 20

// Config holds server configuration.
type Config struct {
	Addr         string
	Version      string
	MaxBodyBytes int64
	// ContentType, when set, overrides classification for every request
	// that does not name its own.
	ContentType document.ContentType
}

// Server serves the scoring API.
type Server struct {
	cfg        Config
	rules      rules.Rules
	engine     *gin.Engine
	metrics    *metrics
	httpServer *http.Server
}

// New builds the router. Each server owns its own metrics registry.
func New(cfg Config, r rules.Rules) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:     cfg,
		rules:   r,
		engine:  gin.New(),
		metrics: newMetrics(reg),
	}

	s.engine.Use(requestID(), recovery(), accessLog(), s.metrics.instrument(), bodyLimit(cfg.MaxBodyBytes))

	api := s.engine.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/rules", s.handleRules)
		api.POST("/check", s.handleCheck)
		api.POST("/word-count", s.handleWordCount)
		api.POST("/structure", s.handleStructure)
		api.POST("/brand-voice", s.handleBrandVoice)
		api.POST("/readability", s.handleReadability)
		api.POST("/suggestions", s.handleSuggestions)
	}
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
