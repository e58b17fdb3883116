// Package http реализует маршрутизацию HTTP-слоя сервера tabkeeper.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов и сбор метрик;
//   - подключение проверки access-токенов для защищённых маршрутов;
//   - служебные эндпоинты: /health, /metrics, pprof и swagger.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
)

// options — необязательные части роутера.
type options struct {
	registry     *prometheus.Registry
	metricsPath  string
	pprofPrefix  string
	swagger      bool
	maxBodyBytes int64
}

// Option включает необязательную часть роутера.
type Option func(*options)

// WithMetrics собирает RED-метрики в reg и отдаёт их по path.
func WithMetrics(reg *prometheus.Registry, path string) Option {
	return func(o *options) {
		o.registry = reg
		o.metricsPath = path
	}
}

// WithPprof монтирует chi-профайлер по prefix.
func WithPprof(prefix string) Option {
	return func(o *options) { o.pprofPrefix = prefix }
}

// WithSwagger включает swagger UI на /swagger/*.
func WithSwagger() Option {
	return func(o *options) { o.swagger = true }
}

// WithMaxBodyBytes ограничивает размер тела запроса.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) { o.maxBodyBytes = n }
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware восстановления после паники, логирования и метрик для всех запросов;
//   - публичные маршруты регистрации и входа;
//   - группу маршрутов, защищённых access-токеном (/users, /tabs).
func NewRouter(h *api.Handler, opts ...Option) http.Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	if o.registry != nil {
		r.Use(middleware.NewHTTPMetrics(o.registry).Middleware())
	}
	if o.maxBodyBytes > 0 {
		r.Use(chimw.RequestSize(o.maxBodyBytes))
	}

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	// служебные пути
	r.Get("/health", h.Health)
	if o.registry != nil {
		r.Handle(o.metricsPath, promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{}))
	}
	if o.pprofPrefix != "" {
		r.Mount(o.pprofPrefix, chimw.Profiler())
	}
	if o.swagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// публичные пути
	r.Post("/users", h.RegisterUser)
	r.Post("/users/authenticate", h.AuthenticateUser)

	// защищённые пути
	r.Group(func(r chi.Router) {
		r.Use(h.RequireUser())

		r.Patch("/users", h.UpdateUser)
		r.Delete("/users", h.DestroyUser)

		r.Route("/tabs", func(r chi.Router) {
			r.Post("/", h.CreateTab)
			r.Get("/", h.IndexTabs)
			r.Get("/count", h.CountTabs)
			r.Get("/{id}", h.ShowTab)
			r.Patch("/{id}", h.UpdateTab)
			r.Delete("/{id}", h.DestroyTab)
		})
	})

	return r
}
