// Package session implements the per-tab session store: the signed-in
// identity and the status of the auth operation in flight.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/identity"
)

// ProfileSaveFailedMessage is shown when the account was created but the
// registration profile could not be stored.
const ProfileSaveFailedMessage = "Account created, but saving your profile failed. Please try again."

// ErrProfileNotSaved marks a sign-up whose account exists without a profile.
var ErrProfileNotSaved = errors.New(ProfileSaveFailedMessage)

// identityClient is the identity provider SDK used by the store.
type identityClient interface {
	SignIn(ctx context.Context, email, password string) error
	CreateAccount(ctx context.Context, email, password string) (*domain.Identity, error)
	SignOut(ctx context.Context) error
}

// profileStore is the user-record store.
type profileStore interface {
	Upsert(ctx context.Context, p domain.Profile) error
}

// Session is the observable store state.
type Session struct {
	Identity  *domain.Identity `json:"identity,omitempty"`
	Loading   bool             `json:"loading"`
	LastError string           `json:"last_error,omitempty"`
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool { return s.Identity != nil }

// Store owns one tab's session state.
type Store struct {
	log      *slog.Logger
	ids      identityClient
	profiles profileStore

	mu        sync.Mutex
	state     Session
	pending   *domain.Profile
	observers []func(Session)
	teardown  []func(context.Context) error

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an unauthenticated store.
func New(logger *slog.Logger, ids identityClient, profiles profileStore) *Store {
	return &Store{
		log:      logger.With("component", "session"),
		ids:      ids,
		profiles: profiles,
	}
}

// Start consumes the identity feed on a single goroutine, applying each
// event through SetUser, until ctx is done, Close is called or the feed closes.
func (s *Store) Start(ctx context.Context, feed <-chan domain.IdentityEvent) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-feed:
				if !ok {
					return
				}
				s.SetUser(ev.Identity)
			}
		}
	}()
}

// Close stops the feed consumer and waits for it to exit.
func (s *Store) Close() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// SetUser replaces the identity. It is the only writer of Session.Identity.
// A pending profile belonging to another identity is dropped.
func (s *Store) SetUser(id *domain.Identity) {
	s.update(func(st *Session) {
		st.Identity = id
		if s.pending != nil && (id == nil || id.UserID != s.pending.UserID) {
			s.pending = nil
		}
	})
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers an observer called with the new state after every
// mutation. Observers run outside the store lock.
func (s *Store) OnChange(fn func(Session)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// OnSignOut registers a resource release hook run after every sign-out.
func (s *Store) OnSignOut(fn func(context.Context) error) {
	s.mu.Lock()
	s.teardown = append(s.teardown, fn)
	s.mu.Unlock()
}

// SignIn authenticates against the identity service. The identity itself
// arrives through the feed.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.begin()

	err := s.ids.SignIn(ctx, email, password)
	s.finish(err)
	return err
}

// SignUp creates an account and writes its registration profile. When the
// account exists but the profile write fails, the profile stays pending and
// the next SignUp with the same email, while still signed in as that
// account, retries only the profile write.
func (s *Store) SignUp(ctx context.Context, in SignUpInput) error {
	s.begin()

	err := s.signUp(ctx, in)
	s.finish(err)
	return err
}

func (s *Store) signUp(ctx context.Context, in SignUpInput) error {
	in.normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	if p := s.pendingFor(in.Email); p != nil {
		err := s.writeProfile(ctx, in.profile(p.UserID))
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		// The account is gone; start over.
		s.setPending(nil)
	}

	id, err := s.ids.CreateAccount(ctx, in.Email, in.Password)
	if err != nil {
		return err
	}

	return s.writeProfile(ctx, in.profile(id.UserID))
}

func (s *Store) writeProfile(ctx context.Context, p domain.Profile) error {
	if err := s.profiles.Upsert(ctx, p); err != nil {
		s.log.ErrorContext(ctx, "save registration profile",
			slog.String("user_id", p.UserID.String()),
			slog.String("error", err.Error()))

		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.setPending(&p)
		return ErrProfileNotSaved
	}

	s.setPending(nil)
	return nil
}

// SignOut revokes the session and runs the release hooks best-effort.
func (s *Store) SignOut(ctx context.Context) error {
	s.begin()

	err := s.ids.SignOut(ctx)

	s.mu.Lock()
	s.pending = nil
	hooks := slices.Clone(s.teardown)
	s.mu.Unlock()

	for _, h := range hooks {
		if herr := h(ctx); herr != nil {
			s.log.WarnContext(ctx, "sign-out teardown", slog.String("error", herr.Error()))
		}
	}

	s.finish(err)
	return err
}

func (s *Store) begin() {
	s.update(func(st *Session) {
		st.Loading = true
		st.LastError = ""
	})
}

func (s *Store) finish(err error) {
	s.update(func(st *Session) {
		st.Loading = false
		if err != nil {
			st.LastError = userMessage(err)
		}
	})
}

func (s *Store) update(fn func(*Session)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o(st)
	}
}

// pendingFor returns the pending profile only while the tab is signed in as
// the account it belongs to.
func (s *Store) pendingFor(email string) *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, id := s.pending, s.state.Identity
	if p == nil || id == nil || id.UserID != p.UserID || !strings.EqualFold(p.Email, email) {
		return nil
	}
	cp := *p
	return &cp
}

func (s *Store) setPending(p *domain.Profile) {
	s.mu.Lock()
	s.pending = p
	s.mu.Unlock()
}

// userMessage returns the text shown in the auth form. Provider errors and
// the partial sign-up error pass through; anything else is reduced.
func userMessage(err error) string {
	var (
		verr *domain.ValidationError
		perr *identity.Error
	)
	switch {
	case errors.Is(err, ErrProfileNotSaved):
		return ProfileSaveFailedMessage
	case errors.As(err, &perr):
		return perr.Message
	case errors.As(err, &verr):
		fe := verr.Errors[0]
		field := strings.ReplaceAll(fe.Field, "_", " ")
		return fmt.Sprintf("%s%s: %s.", strings.ToUpper(field[:1]), field[1:], fe.Message)
	default:
		return "Something went wrong. Please try again."
	}
}
