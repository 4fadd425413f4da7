package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"termfolio/internal/logging"
	"termfolio/internal/model"
	"termfolio/internal/shell"
	"termfolio/internal/store"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var staticFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

// Options configures the web server.
type Options struct {
	Content      model.Content
	Store        *store.Store // nil disables visitor tracking and /api/stats
	Mailer       Mailer       // nil disables the contact form
	HistoryLimit int
	Debug        bool // gin debug mode
}

// Server serves the portfolio page and the shared web terminal. There is
// one Session for every visitor; mu keeps the handlers memory-safe.
type Server struct {
	opts    Options
	engine  *gin.Engine
	log     *logging.Logger
	mu      sync.Mutex
	session *shell.Session
}

// New builds the gin engine and its routes.
func New(opts Options) (*Server, error) {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}

	s := &Server{
		opts:    opts,
		log:     logging.L().With("component", "web"),
		session: shell.NewSession(shell.Default(opts.Content), opts.HistoryLimit),
	}

	r := gin.New()
	r.Use(requestLogger(s.log), gin.Recovery())
	if opts.Store != nil {
		r.Use(visitorTracking(opts.Store, s.log))
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.GET("/content", s.handleContent)
	api.GET("/terminal", s.handleTerminalState)
	api.POST("/terminal", s.handleTerminalCommand)
	api.POST("/navigate", s.handleNavigate)
	api.POST("/contact", s.handleContact)
	api.GET("/stats", s.handleStats)

	s.engine = r
	return s, nil
}

// Handler exposes the engine for http.Server and httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Infow("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

var templateFuncs = template.FuncMap{
	"percent": func(p float64) int { return int(p*100 + 0.5) },
	"icon":    model.SectionIcon,
}
