// Package detector adapts a face detection inference backend for one tab:
// asynchronous one-time initialization, a readiness signal, and a single
// detect operation.
package detector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/metrics"
)

// ErrNotReady is returned by Detect before initialization has succeeded.
var ErrNotReady = errors.New("detector not ready")

// ErrClosed is returned by Detect after Close.
var ErrClosed = errors.New("detector closed")

// Frame is one still image grabbed from the camera.
type Frame struct {
	JPEG   []byte
	Width  int
	Height int
}

// Backend is an inference engine that finds face regions in an image.
type Backend interface {
	Init(ctx context.Context) error
	DetectFaces(ctx context.Context, f Frame) ([]domain.FaceRegion, error)
	Close() error
}

// Adapter owns a backend for the lifetime of one tab. Initialization runs
// at most once; a failed initialization is final.
type Adapter struct {
	log         *slog.Logger
	backend     Backend
	initTimeout time.Duration

	startOnce sync.Once
	closeOnce sync.Once
	ready     chan struct{}
	settled   chan struct{}

	mu      sync.RWMutex
	initErr error
	closed  bool
}

// NewAdapter creates an adapter; call Start to begin initialization.
func NewAdapter(logger *slog.Logger, backend Backend, initTimeout time.Duration) *Adapter {
	return &Adapter{
		log:         logger.With("component", "detector"),
		backend:     backend,
		initTimeout: initTimeout,
		ready:       make(chan struct{}),
		settled:     make(chan struct{}),
	}
}

// Start launches backend initialization in the background. Later calls are
// no-ops.
func (a *Adapter) Start(ctx context.Context) {
	a.startOnce.Do(func() {
		go a.init(ctx)
	})
}

func (a *Adapter) init(ctx context.Context) {
	defer close(a.settled)

	if a.initTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.initTimeout)
		defer cancel()
	}

	started := time.Now()
	err := a.backend.Init(ctx)
	metrics.RecordDetectorInit(err)

	if err != nil {
		a.mu.Lock()
		a.initErr = fmt.Errorf("detector.Init: %w", err)
		a.mu.Unlock()
		a.log.ErrorContext(ctx, "detector initialization failed",
			slog.Duration("elapsed", time.Since(started)),
			slog.String("error", err.Error()))
		return
	}

	a.log.InfoContext(ctx, "detector ready", slog.Duration("elapsed", time.Since(started)))
	close(a.ready)
}

// Ready is closed once initialization succeeds. It is never closed when
// initialization fails.
func (a *Adapter) Ready() <-chan struct{} { return a.ready }

// Settled is closed when initialization has finished, successfully or not.
func (a *Adapter) Settled() <-chan struct{} { return a.settled }

// IsReady reports whether initialization has succeeded.
func (a *Adapter) IsReady() bool {
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// InitErr returns the initialization failure, if any.
func (a *Adapter) InitErr() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.initErr
}

// Detect runs face detection on a frame. Zero faces is a valid result.
// There is no retry.
func (a *Adapter) Detect(ctx context.Context, f Frame) ([]domain.FaceRegion, error) {
	if !a.IsReady() {
		return nil, ErrNotReady
	}

	a.mu.RLock()
	closed := a.closed
	a.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	faces, err := a.backend.DetectFaces(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("detector.Detect: %w", err)
	}
	return faces, nil
}

// Close releases the backend. It is safe to call more than once.
func (a *Adapter) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.mu.Lock()
		a.closed = true
		a.mu.Unlock()
		err = a.backend.Close()
	})
	return err
}
