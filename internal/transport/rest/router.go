package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/moodverse-backend/internal/config"
	"github.com/heartmarshall/moodverse-backend/internal/transport/middleware"
)

// RouterDeps are the handlers and settings mounted by NewRouter.
type RouterDeps struct {
	Logger      *slog.Logger
	Health      *HealthHandler
	Auth        *AuthHandler
	Content     *ContentHandler
	Tabs        http.Handler
	Validator   middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
}

// NewRouter builds the HTTP surface: probes, metrics, auth, content and the
// tab WebSocket.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Use(d.RateLimiter.Limit("auth", d.RateLimit.AuthPerMinute))
		r.Use(middleware.Auth(d.Validator))

		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
		r.Post("/refresh", d.Auth.Refresh)
		r.With(middleware.RequireUser).Post("/logout", d.Auth.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(d.RateLimit.APIPerMinute, time.Minute))

		r.Get("/recommendations/{mood}/{category}", d.Content.Recommendations)
		r.Get("/quiz/{mood}", d.Content.Quiz)
	})

	r.Handle("/ws", d.Tabs)

	return r
}
