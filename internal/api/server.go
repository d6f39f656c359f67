// Package api serves a small read-only ops surface next to the bot:
// liveness, aggregate account stats and the current intake flag.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tg_account_bot/internal/model"
	"tg_account_bot/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	GetStats(ctx context.Context) (*model.Stats, error)
	AccountsOpen(ctx context.Context) (bool, error)
}

type Config struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Server struct {
	http  *http.Server
	store Store
}

func NewServer(cfg Config, store Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{store: store}

	router.GET("/health", s.health)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stats", s.stats)
		v1.GET("/intake", s.intake)
	}

	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: router,
	}
	return s
}

// Start serves in a background goroutine until Shutdown.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger().Error("ops server failed", zap.Error(err))
		}
	}()
	logger.Logger().Info("ops server started", zap.String("addr", s.http.Addr))
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.store.GetStats(c.Request.Context())
	if err != nil {
		logger.Logger().Error("failed to load stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": stats.ByStatus})
}

func (s *Server) intake(c *gin.Context) {
	open, err := s.store.AccountsOpen(c.Request.Context())
	if err != nil {
		logger.Logger().Error("failed to load intake flag", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": open})
}
