// Package capture implements the capture and analysis state machine: one
// camera still, face detection, mood assignment, recommendations.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/metrics"
)

// User-facing capture errors.
const (
	NoFaceMessage         = "No face detected. Please ensure your face is visible in the camera."
	AnalysisFailedMessage = "Failed to analyze mood. Please try again."
	DetectorFailedMessage = "Failed to load face detection model. Please refresh the page."
)

// faceDetector is the tab's detector adapter.
type faceDetector interface {
	IsReady() bool
	InitErr() error
	Settled() <-chan struct{}
	Detect(ctx context.Context, f detector.Frame) ([]domain.FaceRegion, error)
}

// frameSource grabs one still from the camera.
type frameSource interface {
	Snapshot(ctx context.Context) (detector.Frame, error)
}

// Machine is the per-tab capture state machine.
type Machine struct {
	log           *slog.Logger
	det           faceDetector
	frames        frameSource
	classifier    Classifier
	detectTimeout time.Duration

	inFlight atomic.Bool

	mu        sync.Mutex
	state     domain.CaptureSession
	observers []func(domain.CaptureSession)
}

// NewMachine creates a machine in the initial Idle state.
func NewMachine(logger *slog.Logger, det faceDetector, frames frameSource, classifier Classifier, detectTimeout time.Duration) *Machine {
	return &Machine{
		log:           logger.With("component", "capture"),
		det:           det,
		frames:        frames,
		classifier:    classifier,
		detectTimeout: detectTimeout,
		state:         domain.CaptureSession{Phase: domain.CapturePhaseIdle},
	}
}

// OnChange registers an observer called after every state change.
func (m *Machine) OnChange(fn func(domain.CaptureSession)) {
	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

// WatchDetector notifies observers once the detector initialization settles
// so that readiness or the load failure becomes visible.
func (m *Machine) WatchDetector(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
		case <-m.det.Settled():
			m.update(func(*domain.CaptureSession) {})
		}
	}()
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() domain.CaptureSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() domain.CaptureSession {
	st := m.state
	if st.Mood != nil {
		mood := *st.Mood
		st.Mood = &mood
	}
	st.DetectorReady = m.det.IsReady()
	if m.det.InitErr() != nil {
		st.Error = DetectorFailedMessage
	}
	return st
}

// Capture grabs one frame, detects faces and assigns a mood. It is a no-op
// returning false when the detector is not ready, a capture is in flight, or
// recommendations are showing.
func (m *Machine) Capture(ctx context.Context) bool {
	if !m.det.IsReady() {
		return false
	}
	if !m.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer m.inFlight.Store(false)

	m.mu.Lock()
	if m.state.Phase != domain.CapturePhaseIdle {
		m.mu.Unlock()
		return false
	}
	m.state.Phase = domain.CapturePhaseCapturing
	m.state.Analyzing = true
	m.state.Error = ""
	m.mu.Unlock()
	m.notify()

	started := time.Now()
	mood, faces, err := m.analyze(ctx)
	elapsed := time.Since(started)

	switch {
	case err != nil:
		metrics.RecordCapture(metrics.OutcomeFailure, elapsed)
		m.log.ErrorContext(ctx, "analyze mood", slog.String("error", err.Error()))
		m.update(func(st *domain.CaptureSession) {
			*st = domain.CaptureSession{Phase: domain.CapturePhaseIdle, Error: AnalysisFailedMessage}
		})
	case faces == 0:
		metrics.RecordCapture(metrics.OutcomeNoFace, elapsed)
		m.update(func(st *domain.CaptureSession) {
			*st = domain.CaptureSession{Phase: domain.CapturePhaseIdle, Error: NoFaceMessage}
		})
	default:
		metrics.RecordCapture(metrics.OutcomeFaces, elapsed)
		metrics.RecordMood(mood.String())
		m.log.InfoContext(ctx, "mood assigned",
			slog.String("mood", mood.String()),
			slog.Int("faces", faces))
		m.update(func(st *domain.CaptureSession) {
			*st = domain.CaptureSession{
				Phase:               domain.CapturePhaseRecommending,
				Mood:                &mood,
				ShowRecommendations: true,
			}
		})
	}
	return true
}

// analyze grabs the frame, then detects, then classifies, in that order.
func (m *Machine) analyze(ctx context.Context) (domain.Mood, int, error) {
	frame, err := m.frames.Snapshot(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("grab frame: %w", err)
	}

	detectCtx := ctx
	if m.detectTimeout > 0 {
		var cancel context.CancelFunc
		detectCtx, cancel = context.WithTimeout(ctx, m.detectTimeout)
		defer cancel()
	}

	faces, err := m.det.Detect(detectCtx, frame)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, 0, fmt.Errorf("detect faces: timed out after %s: %w", m.detectTimeout, err)
		}
		return 0, 0, fmt.Errorf("detect faces: %w", err)
	}
	if len(faces) == 0 {
		return 0, 0, nil
	}

	mood, err := m.classifier.Classify(detectCtx, frame, faces)
	if err != nil {
		return 0, 0, fmt.Errorf("classify: %w", err)
	}
	if !mood.IsValid() {
		return 0, 0, fmt.Errorf("classify: invalid mood %d", mood)
	}
	return mood, len(faces), nil
}

// Reset returns from recommendations to the initial Idle state. It reports
// whether anything changed.
func (m *Machine) Reset() bool {
	m.mu.Lock()
	if m.state.Phase != domain.CapturePhaseRecommending {
		m.mu.Unlock()
		return false
	}
	m.state = domain.CaptureSession{Phase: domain.CapturePhaseIdle}
	m.mu.Unlock()

	m.notify()
	return true
}

// DismissError clears a capture error shown in Idle. A detector load
// failure cannot be dismissed.
func (m *Machine) DismissError() bool {
	m.mu.Lock()
	if m.state.Phase != domain.CapturePhaseIdle || m.state.Error == "" {
		m.mu.Unlock()
		return false
	}
	m.state.Error = ""
	m.mu.Unlock()

	m.notify()
	return true
}

func (m *Machine) update(fn func(*domain.CaptureSession)) {
	m.mu.Lock()
	fn(&m.state)
	m.mu.Unlock()
	m.notify()
}

func (m *Machine) notify() {
	m.mu.Lock()
	st := m.snapshotLocked()
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, o := range observers {
		o(st)
	}
}
