package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/url-shortener/internal/http/handlers"
	"github.com/pribylovaa/url-shortener/internal/http/middleware"
	"github.com/pribylovaa/url-shortener/internal/metrics"
)

// API — сервис целиком: обработчики + определение пользователя по токену.
type API interface {
	handlers.Service
	middleware.Identifier
}

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	Metrics  *metrics.Metrics
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(api API, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),          // до логирования
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Metrics(opts.Metrics),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}
	root.Use(middleware.Identity(api))

	h := handlers.New(api)

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)

	// urls
	r.Post("/url", h.CreateURL)
	r.Patch("/url", h.UpdateURL)
	r.Post("/url/{code}", h.ResolveURL)
	r.Delete("/url/{code}", h.DeleteURL)

	// stats
	r.Get("/url/all", h.ListURLs)
	r.Get("/url/active", h.ListActiveURLs)
	r.Get("/url/visits/{code}", h.URLVisits)
}
