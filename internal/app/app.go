package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moodverse-backend/internal/auth"
	"github.com/heartmarshall/moodverse-backend/internal/capture"
	"github.com/heartmarshall/moodverse-backend/internal/config"
	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/detector/grpcbackend"
	authsvc "github.com/heartmarshall/moodverse-backend/internal/service/auth"
	"github.com/heartmarshall/moodverse-backend/internal/tab"
	"github.com/heartmarshall/moodverse-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodverse-backend/internal/transport/rest"
	"github.com/heartmarshall/moodverse-backend/internal/transport/ws"
)

// Run is the application entry point. It wires storage, identity, the
// inference backend and the HTTP surface, then serves until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stdout)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("detector", cfg.Detector.Backend),
		slog.String("classifier", cfg.Capture.Classifier),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	backend, classifier, detectorCheck, err := newInference(cfg, logger)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("close detector backend", slog.String("error", err.Error()))
		}
	}()

	h := newHandler(cfg, logger, pool, backend, classifier, detectorCheck)
	defer h.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      h.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Hijacked WebSocket connections are not tracked by srv.Shutdown.
		h.tabs.Shutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

type handler struct {
	router  http.Handler
	tabs    *ws.Handler
	limiter *middleware.RateLimiter
}

// newHandler wires identity, tabs and the HTTP surface on top of pool and
// the inference backend.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	backend detector.Backend,
	classifier capture.Classifier,
	detectorCheck rest.Checker,
) *handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(
		logger,
		user.New(pool),
		token.New(pool),
		authmethod.New(pool),
		postgres.NewTxManager(pool),
		jwtManager,
		cfg.Auth,
	)

	tabDeps := tab.Deps{
		Auth:          authService,
		Profiles:      profile.New(pool),
		Backend:       backend,
		Classifier:    classifier,
		Detector:      cfg.Detector,
		Capture:       cfg.Capture,
		MaxFrameBytes: int(cfg.Server.MaxFrameBytes),
	}
	tabs := ws.NewHandler(logger, func(ctx context.Context) *tab.Tab {
		return tab.New(ctx, logger, tabDeps)
	}, ws.Options{
		AllowedOrigins:  cfg.CORS.Origins(),
		MaxMessageBytes: cfg.Server.MaxFrameBytes,
		AuthTimeout:     cfg.Auth.OperationTimeout,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Health:      rest.NewHealthHandler(rest.CheckerFunc(pool.Ping), detectorCheck, Version),
		Auth:        rest.NewAuthHandler(authService, logger),
		Content:     rest.NewContentHandler(),
		Tabs:        tabs,
		Validator:   authService,
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
	})

	return &handler{router: router, tabs: tabs, limiter: limiter}
}

// newInference builds the detector backend and the mood classifier. The
// returned checker is nil when the backend has no remote dependency.
func newInference(cfg *config.Config, logger *slog.Logger) (detector.Backend, capture.Classifier, rest.Checker, error) {
	switch cfg.Detector.Backend {
	case "static":
		backend := detector.NewStaticBackend(cfg.Detector.StaticFaces)
		return backend, capture.NewRandomClassifier(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil, nil
	default:
		client, err := grpcbackend.New(cfg.Detector, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		var classifier capture.Classifier
		if cfg.Capture.Classifier == "remote" {
			classifier = capture.NewRemoteClassifier(client)
		} else {
			classifier = capture.NewRandomClassifier(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return client, classifier, rest.CheckerFunc(client.Ping), nil
	}
}
