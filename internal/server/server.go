package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"careconnect/internal/service"
	"careconnect/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// storeTimeout bounds every repository call made on behalf of a request.
const storeTimeout = 5 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	logger       *logrus.Logger
	config       *types.Config
	support      *service.SupportService
	appointments *service.AppointmentService
	db           Pinger
	templates    *template.Template

	limiter     *rateLimiter
	stopLimiter context.CancelFunc

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	support *service.SupportService,
	appointments *service.AppointmentService,
	db Pinger,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:       logger,
		config:       config,
		support:      support,
		appointments: appointments,
		db:           db,
		limiter:      newRateLimiter(config.RateLimitRPS, config.RateLimitBurst),
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	// Wrapped outside the mux so unmatched routes and preflight requests
	// are logged and answered too.
	s.handler = s.LoggingMiddleware(s.CORS(s.StripTrailingSlash(mux)))

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.handler,
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopLimiter = cancel
	go s.limiter.sweep(ctx, time.Minute, 3*time.Minute)

	return s, nil
}

func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	s.stopLimiter()
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/", s.handleHome, http.MethodGet)

	r.HandleFunc("/api/health", s.handleHealth, http.MethodGet)
	r.HandleFunc("/api/chat/rules", s.handleGetChatRules, http.MethodGet)
	r.HandleFunc("/api/chat", s.handlePostChat, http.MethodPost)

	r.HandleFunc("/api/support", s.handleListSupport, http.MethodGet)
	r.HandleFunc("/api/support/:id", s.handleGetSupport, http.MethodGet)

	r.HandleFunc("/api/appointments", s.handleListAppointments, http.MethodGet)
	r.HandleFunc("/api/appointments/:id", s.handleGetAppointment, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RateLimit)

		r.HandleFunc("/api/support", s.handleCreateSupport, http.MethodPost)
		r.HandleFunc("/api/support/:id", s.handleDeleteSupport, http.MethodDelete)

		r.HandleFunc("/api/appointments", s.handleCreateAppointment, http.MethodPost)
		r.HandleFunc("/api/appointments/:id", s.handleUpdateAppointment, http.MethodPut)
		r.HandleFunc("/api/appointments/:id", s.handleDeleteAppointment, http.MethodDelete)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"title": func(s string) string {
			parts := strings.Split(s, "-")
			for i, p := range parts {
				if p != "" {
					parts[i] = strings.ToUpper(p[:1]) + p[1:]
				}
			}
			return strings.Join(parts, "-")
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
