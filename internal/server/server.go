// Package server assembles the gin engine: middleware, the mounted route
// table, the admin area, the contact form and the operational endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/explorer"
	"github.com/Zachkp/folio/internal/layout"
	"github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/pages"
	"github.com/Zachkp/folio/internal/route"
	"github.com/Zachkp/folio/internal/tracking"
	"github.com/Zachkp/folio/internal/view"
)

type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	engine   *gin.Engine
	renderer *view.Renderer
	metrics  *metrics.Metrics
	mailer   *contact.Mailer
	store    *tracking.Store
	tracker  *tracking.Tracker
	admin    *admin
	routes   route.Routes
	mounted  []route.Mounted

	mainShell layout.Wrapper
	notFound  *view.Page
	errorPage *view.Page
}

type options struct {
	explorer pages.Explorer
	send     contact.SendFunc
}

type Option func(*options)

// WithExplorer replaces the JSONPlaceholder client.
func WithExplorer(e pages.Explorer) Option {
	return func(o *options) { o.explorer = e }
}

// WithMailSender replaces smtp.SendMail for the contact form.
func WithMailSender(send contact.SendFunc) Option {
	return func(o *options) { o.send = send }
}

// New builds the server. Route table defects and template errors are
// returned before anything listens.
func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	site := content.DefaultSite()
	renderer, err := view.New(view.Options{BasePath: cfg.BasePath, SiteTitle: site.Title, Minify: cfg.MinifyHTML})
	if err != nil {
		return nil, err
	}
	blog, err := content.DefaultBlog()
	if err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		renderer:  renderer,
		metrics:   metrics.New(),
		notFound:  pages.NotFound(renderer),
		errorPage: renderer.Page("page-error", "Something went wrong", nil),
	}
	s.mailer = contact.NewMailer(cfg.SMTP, o.send, log.With("component", "contact"))

	if o.explorer == nil {
		o.explorer = explorer.New(cfg.ExplorerBaseURL, cfg.ExplorerTimeout, explorer.WithRecorder(s.metrics))
	}

	var visits pages.VisitStats
	if cfg.Tracking.Enabled {
		if err := s.openTracking(); err != nil {
			return nil, err
		}
		visits = s.store
	}

	shells := layout.NewShells(renderer, site)
	if s.mainShell, err = shells.Select(layout.Main, layout.DefaultOptions()); err != nil {
		s.Close()
		return nil, err
	}
	s.routes, err = route.NewResolver(shells).ResolveAll(pages.Table(pages.Deps{
		Renderer: renderer,
		Site:     site,
		Blog:     blog,
		Explorer: o.explorer,
		Visits:   visits,
		Log:      log.With("component", "pages"),
	}))
	if err != nil {
		s.Close()
		return nil, err
	}

	if err := s.setupEngine(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Server) openTracking() error {
	store, err := tracking.Open(s.cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open tracking store: %w", err)
	}
	salt, err := tracking.NewToken()
	if err != nil {
		store.Close()
		return err
	}
	tracker, err := tracking.NewTracker(store, tracking.NewHasher(salt), tracking.Options{
		BasePath:  s.cfg.BasePath,
		Exclude:   s.cfg.Tracking.Exclude,
		Retention: s.cfg.Tracking.Retention,
		OnDrop:    s.metrics.VisitDropped,
		Logger:    s.log.With("component", "tracking"),
	})
	if err != nil {
		store.Close()
		return err
	}
	s.store, s.tracker = store, tracker
	s.log.Info("visitor tracking enabled with hashed IP addresses", "database", s.cfg.DatabasePath)
	return nil
}

func (s *Server) setupEngine() error {
	gin.SetMode(s.cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(s.log), s.metrics.Middleware(), view.Navigate(s.cfg.BasePath))
	if s.tracker != nil {
		r.Use(s.tracker.Middleware())
	}
	s.engine = r

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group(s.cfg.BasePath)
	g.StaticFS("/static", http.FS(view.Static()))
	g.GET("/statistics/work-data-2/export.csv", s.exportWorkCSV)
	g.GET("/contact-form", s.contactForm)
	g.POST("/contact", s.submitContact)

	var err error
	if s.admin, err = newAdmin(s); err != nil {
		return err
	}
	s.admin.register(g)

	s.mounted, err = route.Mount(g, s.routes, route.MountOptions{
		Document: s.renderer.Document,
		Error:    s.renderError,
		NoRoute:  r.NoRoute,
	})
	if err != nil {
		return err
	}
	for _, m := range s.mounted {
		s.log.Debug("route", "pattern", m.Pattern, "layout", m.Layout.String(), "chain", m.Chain)
	}
	return nil
}

// renderError renders missing items as the not-found page and everything
// else as a 500, both inside the main layout.
func (s *Server) renderError(c *gin.Context, err error) {
	status, page := http.StatusInternalServerError, s.errorPage
	if errors.Is(err, view.ErrNotFound) {
		status, page = http.StatusNotFound, s.notFound
	} else {
		_ = c.Error(err)
	}

	body, rerr := page.Render(c, "")
	if rerr == nil {
		body, rerr = s.mainShell(c, body)
	}
	if rerr != nil {
		s.log.Error("render error page", "err", rerr, "cause", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	s.renderer.Document(c, status, body)
}

// fragment writes a named template without the document frame.
func (s *Server) fragment(c *gin.Context, status int, name string, data any) {
	html, err := s.renderer.Render(name, data)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

// standalone writes a full document without site chrome.
func (s *Server) standalone(c *gin.Context, status int, name, title string, data any) {
	view.SetTitle(c, title)
	html, err := s.renderer.Render(name, data)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderer.Document(c, status, html)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Routes returns the resolved route table.
func (s *Server) Routes() route.Routes {
	return s.routes
}

// Mounted returns the URL patterns served by the route table.
func (s *Server) Mounted() []route.Mounted {
	return s.mounted
}

// Run serves until ctx is canceled, then shuts the listener down and stops
// the tracker.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.tracker != nil {
		g.Go(func() error { return s.tracker.Run(gctx) })
	}
	g.Go(func() error {
		s.log.Info("listening", "addr", srv.Addr, "base_path", s.cfg.BasePath, "routes", len(s.mounted))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases the tracking store.
func (s *Server) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
