package httpserver

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/smarttransit/transitdash/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusSource is the narrow dataset contract required by the HTTP API.
type StatusSource interface {
	model.DatasetSource
	model.SectionCounter
}

// Server provides the mock transit HTTP API.
type Server struct {
	addr      string
	token     string
	source    StatusSource
	log       *logrus.Entry
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server. A non-empty token requires
// "Authorization: Bearer <token>" on every request.
func NewServer(addr, token string, source StatusSource, log *logrus.Entry) *Server {
	if addr == "" {
		addr = model.DefaultAPIAddr
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		token:     token,
		source:    source,
		log:       log.WithField("component", "httpserver"),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	if s.token != "" {
		r.Use(s.requireToken())
	}

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/status", s.handleStatus)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("serve failed")
		}
	}()
	s.log.WithField("addr", listener.Addr().String()).Info("listening")
	return nil
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != s.token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	if s.source == nil || s.source.Dataset() == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    s.source.Dataset().Title,
		"sections": s.source.SectionCounts(),
	})
}
