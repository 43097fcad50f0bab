// Package identity is the per-tab client of the identity service. It holds
// the signed-in identity and token pair for one browser tab and publishes
// every identity change on subscriber feeds.
package identity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
	authsvc "github.com/heartmarshall/moodverse-backend/internal/service/auth"
	"github.com/heartmarshall/moodverse-backend/pkg/ctxutil"
)

// authService is the identity provider consumed by the client.
type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context) error
}

// Tokens is the token pair the browser keeps to resume the session after
// a page reload.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Client tracks one tab's authentication state.
type Client struct {
	log *slog.Logger
	svc authService

	mu      sync.Mutex
	current *domain.Identity
	tokens  Tokens
	subs    map[int]chan domain.IdentityEvent
	nextSub int
}

// NewClient creates a signed-out client.
func NewClient(logger *slog.Logger, svc authService) *Client {
	return &Client{
		log:  logger.With("component", "identity"),
		svc:  svc,
		subs: make(map[int]chan domain.IdentityEvent),
	}
}

// SignIn authenticates with email and password. On success the new identity
// is published to subscribers; the return value carries no identity.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	res, err := c.svc.LoginWithPassword(ctx, authsvc.LoginPasswordInput{Email: email, Password: password})
	if err != nil {
		return translate(err)
	}
	c.establish(res)
	return nil
}

// CreateAccount registers a new account, signs it in and returns its handle.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (*domain.Identity, error) {
	res, err := c.svc.Register(ctx, authsvc.RegisterInput{Email: email, Password: password})
	if err != nil {
		return nil, translate(err)
	}
	c.establish(res)

	id := *res.Identity
	return &id, nil
}

// Resume restores a session from a refresh token kept by the browser.
func (c *Client) Resume(ctx context.Context, refreshToken string) error {
	res, err := c.svc.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		return translateResume(translate(err))
	}
	c.establish(res)
	return nil
}

// SignOut revokes the current session. The local session is cleared and
// the absence published even when revocation fails.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()

	if current == nil {
		return nil
	}

	var revokeErr error
	if err := c.svc.Logout(ctxutil.WithUserID(ctx, current.UserID)); err != nil {
		c.log.ErrorContext(ctx, "revoke session",
			slog.String("user_id", current.UserID.String()),
			slog.String("error", err.Error()))
		revokeErr = translate(err)
	}

	c.mu.Lock()
	c.current = nil
	c.tokens = Tokens{}
	c.publishLocked()
	c.mu.Unlock()

	return revokeErr
}

// Current returns a copy of the signed-in identity, or nil.
func (c *Client) Current() *domain.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyIdentity(c.current)
}

// Tokens returns the current token pair. Both fields are empty when signed out.
func (c *Client) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// Subscribe returns a feed that immediately carries the current identity and
// then every change. Slow consumers only observe the latest event. The
// returned function unsubscribes and closes the feed.
func (c *Client) Subscribe() (<-chan domain.IdentityEvent, func()) {
	ch := make(chan domain.IdentityEvent, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- domain.IdentityEvent{Identity: copyIdentity(c.current)}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}
}

func (c *Client) establish(res *authsvc.AuthResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = copyIdentity(res.Identity)
	c.tokens = Tokens{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}
	c.publishLocked()
}

// publishLocked delivers the current identity to every subscriber, replacing
// an undelivered older event. Caller holds c.mu.
func (c *Client) publishLocked() {
	for _, ch := range c.subs {
		ev := domain.IdentityEvent{Identity: copyIdentity(c.current)}
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}

func copyIdentity(id *domain.Identity) *domain.Identity {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}
