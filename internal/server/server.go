// Package server exposes tag extraction over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/simonhull/id3tags"
	"github.com/simonhull/id3tags/internal/config"
)

const requestIDHeader = "X-Request-ID"

// Server handles extraction requests.
type Server struct {
	cfg    *config.Config
	opts   []id3tags.Option
	logger *slog.Logger
	router *gin.Engine
}

// New builds a Server and its routes.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		opts:   cfg.ExtractOptions(),
		logger: logger,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())

	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.health)
		api.POST("/extract", s.extract)
	}
	return s
}

// Handler returns the HTTP handler for the API routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Server.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("server stopping")
	return srv.Shutdown(shutdownCtx)
}

// requestLogger tags each request with a ksuid and logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ksuid.New().String()
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		s.logger.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": id3tags.Version,
	})
}

func (s *Server) extract(c *gin.Context) {
	data, status, err := s.readUpload(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	res, err := id3tags.Extract(data, s.opts...)
	if err != nil {
		kind := id3tags.ErrorKind(err)
		s.logger.Debug("extraction failed", "id", c.GetString("request_id"), "kind", kind, "err", err)
		c.JSON(statusFor(kind), gin.H{"error": err.Error(), "kind": kind})
		return
	}

	if res.Legacy != nil && s.cfg.Output.Trim {
		t := res.Legacy.Trimmed()
		res.Legacy = &t
	}
	c.JSON(http.StatusOK, res)
}

// readUpload returns the bytes of the multipart field "file", or the raw
// body for any other content type.
func (s *Server) readUpload(c *gin.Context) ([]byte, int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge,
				fmt.Errorf("upload exceeds %d bytes", s.cfg.Server.MaxUploadBytes)
		}
		return nil, http.StatusBadRequest, fmt.Errorf("read body: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if mediaType != "multipart/form-data" {
		return body, http.StatusOK, nil
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	header, err := c.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("multipart field \"file\": %w", err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("read upload: %w", err)
	}
	return data, http.StatusOK, nil
}

// statusFor maps an error kind to a response status.
func statusFor(kind string) int {
	switch kind {
	case "parse", "decode", "unsupported_encoding", "unsupported_version", "unsupported_frame":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
