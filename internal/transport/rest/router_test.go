package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moodverse-backend/internal/config"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/service/auth"
	"github.com/heartmarshall/moodverse-backend/internal/transport/middleware"
)

type rejectAll struct{}

func (rejectAll) ValidateToken(context.Context, string) (*domain.Identity, error) {
	return nil, errors.New("invalid")
}

func newTestRouter(t *testing.T, svc authService, authPerMinute int) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	return NewRouter(RouterDeps{
		Logger:  logger,
		Health:  NewHealthHandler(CheckerFunc(func(context.Context) error { return nil }), nil, "test"),
		Auth:    NewAuthHandler(svc, logger),
		Content: NewContentHandler(),
		Tabs: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
		Validator:   rejectAll{},
		RateLimiter: rl,
		CORS:        config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Content-Type"},
		RateLimit:   config.RateLimitConfig{AuthPerMinute: authPerMinute, APIPerMinute: 100},
	})
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, &authServiceMock{}, 10)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "live", method: http.MethodGet, path: "/live", want: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "recommendations", method: http.MethodGet, path: "/api/recommendations/happy/music", want: http.StatusOK},
		{name: "quiz", method: http.MethodGet, path: "/api/quiz/neutral", want: http.StatusOK},
		{name: "ws mounted", method: http.MethodGet, path: "/ws", want: http.StatusTeapot},
		{name: "logout requires user", method: http.MethodPost, path: "/auth/logout", want: http.StatusUnauthorized},
		{name: "unknown", method: http.MethodGet, path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_AuthRateLimited(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginWithPasswordFunc: func(context.Context, auth.LoginPasswordInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	r := newTestRouter(t, svc, 2)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"a@example.com","password":"secret1"}`))
		req.RemoteAddr = "203.0.113.9:5000"
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	require.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}
