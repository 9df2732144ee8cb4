package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/elseff/articles-api-sub000/internal/articles"
	"github.com/elseff/articles-api-sub000/internal/auth"
	"github.com/elseff/articles-api-sub000/internal/observability"
	"github.com/elseff/articles-api-sub000/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthHandler     *auth.Handler
	AuthMiddleware  func(http.Handler) http.Handler
	UsersHandler    *users.Handler
	ArticlesHandler *articles.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with articles-api defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	authLimit := 20
	if params.Config != nil && params.Config.AuthRateLimit > 0 {
		authLimit = params.Config.AuthRateLimit
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// Credential endpoints get a tighter per-IP budget.
			r.Use(httprate.Limit(authLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			r.Route("/auth", params.AuthHandler.MountRoutes)
		})
		r.Group(func(r chi.Router) {
			r.Use(params.AuthMiddleware)
			r.Route("/users", params.UsersHandler.MountRoutes)
			r.Route("/articles", params.ArticlesHandler.MountRoutes)
		})
	})

	return r
}
