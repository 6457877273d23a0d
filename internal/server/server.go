// Package server serves the dashboard page and its callback endpoints.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/ukaji3/exdash-go/internal/config"
	"github.com/ukaji3/exdash-go/pkg/exdash"
	"github.com/ukaji3/exdash-go/pkg/exdash/figure"
	"github.com/ukaji3/exdash-go/pkg/exdash/markdown"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"go.uber.org/zap"
)

//go:embed web
var webFS embed.FS

// maxBodyBytes caps callback request bodies.
const maxBodyBytes = 1 << 20

// Server holds the handlers' shared, read-only dependencies.
type Server struct {
	store    *exdash.Store
	cfg      *config.Config
	theme    figure.Theme
	viewOpts view.Options
	md       *markdown.Renderer
	logger   *zap.Logger
	page     *template.Template
	static   fs.FS
}

// New builds a Server over store.
func New(store *exdash.Store, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	page, err := template.ParseFS(webFS, "web/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return nil, err
	}
	return &Server{
		store:    store,
		cfg:      cfg,
		theme:    cfg.Theme.WithDefaults(),
		viewOpts: cfg.ViewOptions(),
		md:       markdown.NewRenderer(),
		logger:   logger,
		page:     page,
		static:   static,
	}, nil
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/table", s.handleTable)
	mux.HandleFunc("POST /api/view", s.handleView)
	mux.HandleFunc("POST /api/callbacks/bar-charts", s.handleBarCharts)
	mux.HandleFunc("POST /api/callbacks/parcats", s.handleParcats)
	mux.HandleFunc("POST /api/callbacks/row-styles", s.handleRowStyles)
	mux.HandleFunc("GET /api/charts/{column}", s.handleChartPNG)
	mux.HandleFunc("POST /api/export", s.handleExport)
	return s.withRequestLogging(mux)
}

// ListenAndServe serves on the configured address until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("serving dashboard", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	s.logger.Info("server stopped")
	return nil
}
