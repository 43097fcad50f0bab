// Package tab wires the per-browser-tab components: identity client, session
// store, camera frames, detector adapter, capture machine, recommendation
// presenter and quiz.
package tab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/capture"
	"github.com/heartmarshall/moodverse-backend/internal/config"
	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/identity"
	"github.com/heartmarshall/moodverse-backend/internal/quiz"
	"github.com/heartmarshall/moodverse-backend/internal/recommend"
	authsvc "github.com/heartmarshall/moodverse-backend/internal/service/auth"
	"github.com/heartmarshall/moodverse-backend/internal/session"
)

// ErrNotAvailable is returned by commands issued on the wrong screen.
var ErrNotAvailable = errors.New("command not available on this screen")

type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context) error
}

type profileStore interface {
	Upsert(ctx context.Context, p domain.Profile) error
}

// Deps are the process-wide collaborators shared by every tab.
type Deps struct {
	Auth       authService
	Profiles   profileStore
	Backend    detector.Backend
	Classifier capture.Classifier
	Detector   config.DetectorConfig
	Capture    config.CaptureConfig
	// MaxFrameBytes bounds a single camera still.
	MaxFrameBytes int
}

// analyzer is the part of a tab that exists only while signed in.
type analyzer struct {
	det     *detector.Adapter
	machine *capture.Machine
	cancel  context.CancelFunc
}

// Tab is one connected browser tab.
type Tab struct {
	log  *slog.Logger
	deps Deps

	ids       *identity.Client
	sess      *session.Store
	frames    *capture.FrameSource
	presenter *recommend.Presenter
	changes   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	analyzer *analyzer
	quiz     *quiz.Quiz
	closed   bool
}

// New creates a signed-out tab and starts its identity feed consumer.
func New(ctx context.Context, logger *slog.Logger, deps Deps) *Tab {
	ctx, cancel := context.WithCancel(ctx)
	log := logger.With("component", "tab")

	ids := identity.NewClient(logger, deps.Auth)
	t := &Tab{
		log:       log,
		deps:      deps,
		ids:       ids,
		sess:      session.New(logger, ids, deps.Profiles),
		frames:    capture.NewFrameSource(deps.MaxFrameBytes),
		presenter: recommend.NewPresenter(),
		changes:   make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
	}

	t.sess.OnChange(t.sessionChanged)
	t.sess.OnSignOut(t.release)

	feed, unsubscribe := ids.Subscribe()
	t.sess.Start(ctx, feed)
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return t
}

// Changes signals that View may have changed. Bursts coalesce.
func (t *Tab) Changes() <-chan struct{} { return t.changes }

// Camera returns the video constraints the browser should request.
func (t *Tab) Camera() CameraConstraints {
	return CameraConstraints{
		Width:      t.deps.Capture.FrameWidth,
		Height:     t.deps.Capture.FrameHeight,
		FacingMode: t.deps.Capture.FacingMode,
	}
}

// Tokens returns the token pair the browser keeps for Resume.
func (t *Tab) Tokens() identity.Tokens { return t.ids.Tokens() }

func (t *Tab) notify() {
	select {
	case t.changes <- struct{}{}:
	default:
	}
}

// sessionChanged starts the analyzer on sign-in and stops it when the
// identity disappears.
func (t *Tab) sessionChanged(s session.Session) {
	if s.Authenticated() {
		t.startAnalyzer()
	} else {
		t.stopAnalyzer()
	}
	t.notify()
}

func (t *Tab) startAnalyzer() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.analyzer != nil || t.closed {
		return
	}

	ctx, cancel := context.WithCancel(t.ctx)
	det := detector.NewAdapter(t.log, detector.Shared(t.deps.Backend), t.deps.Detector.InitTimeout)
	m := capture.NewMachine(t.log, det, t.frames, t.deps.Classifier, t.deps.Detector.DetectTimeout)
	m.OnChange(func(domain.CaptureSession) { t.notify() })

	det.Start(ctx)
	m.WatchDetector(ctx)

	t.analyzer = &analyzer{det: det, machine: m, cancel: cancel}
}

func (t *Tab) stopAnalyzer() {
	t.mu.Lock()
	a := t.analyzer
	t.analyzer = nil
	t.quiz = nil
	t.mu.Unlock()

	if a == nil {
		return
	}
	a.cancel()
	if err := a.det.Close(); err != nil {
		t.log.Warn("close detector", slog.String("error", err.Error()))
	}
}

// release drops the detector and the held camera frame.
func (t *Tab) release(context.Context) error {
	t.stopAnalyzer()
	t.frames.Release()
	t.presenter.Reset()
	return nil
}

func (t *Tab) current() (*analyzer, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.analyzer == nil {
		return nil, ErrNotAvailable
	}
	return t.analyzer, nil
}

// SignIn signs in with email and password.
func (t *Tab) SignIn(ctx context.Context, email, password string) error {
	return t.sess.SignIn(ctx, email, password)
}

// SignUp registers a new account and its profile.
func (t *Tab) SignUp(ctx context.Context, in session.SignUpInput) error {
	return t.sess.SignUp(ctx, in)
}

// SignOut signs out and releases the camera and detector.
func (t *Tab) SignOut(ctx context.Context) error {
	return t.sess.SignOut(ctx)
}

// Resume restores a session from a stored refresh token.
func (t *Tab) Resume(ctx context.Context, refreshToken string) error {
	if err := t.ids.Resume(ctx, refreshToken); err != nil {
		return fmt.Errorf("tab.Resume: %w", err)
	}
	return nil
}

// PushFrame stores the latest camera still.
func (t *Tab) PushFrame(dataURL string) error {
	if _, err := t.current(); err != nil {
		return err
	}
	return t.frames.PushDataURL(dataURL)
}

// Capture runs one capture. It reports whether a capture was started.
func (t *Tab) Capture(ctx context.Context) (bool, error) {
	a, err := t.current()
	if err != nil {
		return false, err
	}
	return a.machine.Capture(ctx), nil
}

// Reset leaves the recommendations and returns to the camera.
func (t *Tab) Reset() error {
	a, err := t.current()
	if err != nil {
		return err
	}
	if a.machine.Reset() {
		t.mu.Lock()
		t.quiz = nil
		t.mu.Unlock()
		t.presenter.Reset()
		t.notify()
	}
	return nil
}

// DismissError clears a capture error.
func (t *Tab) DismissError() error {
	a, err := t.current()
	if err != nil {
		return err
	}
	a.machine.DismissError()
	return nil
}

// SelectCategory switches the recommendations tab.
func (t *Tab) SelectCategory(c domain.Category) error {
	if _, err := t.recommending(); err != nil {
		return err
	}
	if err := t.presenter.Select(c); err != nil {
		return err
	}

	t.mu.Lock()
	t.quiz = nil
	t.mu.Unlock()
	t.notify()
	return nil
}

// StartQuiz opens the mood quiz from the activities tab.
func (t *Tab) StartQuiz() error {
	mood, err := t.recommending()
	if err != nil {
		return err
	}
	if t.presenter.Active() != domain.CategoryActivities {
		return ErrNotAvailable
	}

	q, err := quiz.New(mood)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.quiz = q
	t.mu.Unlock()
	t.notify()
	return nil
}

// Answer answers the current quiz question.
func (t *Tab) Answer(option int) error {
	t.mu.Lock()
	q := t.quiz
	t.mu.Unlock()

	if q == nil {
		return ErrNotAvailable
	}
	if err := q.Answer(option); err != nil {
		return err
	}
	t.notify()
	return nil
}

// CloseQuiz returns from the quiz to the activities tab.
func (t *Tab) CloseQuiz() error {
	t.mu.Lock()
	had := t.quiz != nil
	t.quiz = nil
	t.mu.Unlock()

	if !had {
		return ErrNotAvailable
	}
	t.notify()
	return nil
}

func (t *Tab) recommending() (domain.Mood, error) {
	a, err := t.current()
	if err != nil {
		return 0, err
	}
	st := a.machine.Snapshot()
	if st.Phase != domain.CapturePhaseRecommending || st.Mood == nil {
		return 0, ErrNotAvailable
	}
	return *st.Mood, nil
}

// View renders the tab state.
func (t *Tab) View() View {
	s := t.sess.Snapshot()
	v := View{Session: s}

	t.mu.Lock()
	a, q := t.analyzer, t.quiz
	t.mu.Unlock()

	switch {
	case s.Loading:
		v.Screen = ScreenLoading
		return v
	case !s.Authenticated() || a == nil:
		v.Screen = ScreenAuth
		return v
	}

	st := a.machine.Snapshot()
	if st.Phase != domain.CapturePhaseRecommending || st.Mood == nil {
		v.Screen = ScreenAnalyzer
		v.Capture = &CaptureView{
			Phase:         st.Phase,
			Analyzing:     st.Analyzing,
			DetectorReady: st.DetectorReady,
			Error:         st.Error,
		}
		return v
	}

	mood := *st.Mood
	if q != nil {
		v.Screen = ScreenQuiz
		v.Quiz = quizView(q)
		return v
	}

	active, cards := t.presenter.View(mood)
	v.Screen = ScreenRecommendations
	v.Recommendations = &RecommendationsView{
		Mood:    mood,
		Active:  active,
		Cards:   cards,
		CanQuiz: active == domain.CategoryActivities,
	}
	return v
}

func quizView(q *quiz.Quiz) *QuizView {
	st := q.State()
	qv := &QuizView{Mood: st.Mood, QuestionIndex: st.QuestionIndex, Total: st.Total}
	if cur, ok := q.Current(); ok {
		qv.Question = &cur
		return qv
	}
	if res, err := q.Result(); err == nil {
		qv.Result = &res
	}
	return qv
}

// Close stops the tab and releases everything it holds.
func (t *Tab) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()

	t.stopAnalyzer()
	t.frames.Release()
	t.sess.Close()
	t.cancel()
}
