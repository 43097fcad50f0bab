package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodverse-backend/internal/auth"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/pkg/ctxutil"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. Unknown, revoked or expired tokens
// and deleted users return ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *AuthResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh with unknown or revoked token")
			return domain.ErrUnauthorized
		}
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		if token.IsExpired(s.now()) {
			return domain.ErrUnauthorized
		}

		user, err := s.users.GetByID(ctx, token.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted account",
				slog.String("user_id", token.UserID.String()))
			return domain.ErrUnauthorized
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}

		result, err = s.issueTokens(ctx, user)
		return err
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}

// Logout revokes every refresh token of the user in ctx, ending the session
// in all tabs at their next refresh.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "signed out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken returns the identity an access token was issued for, or
// ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (*domain.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return id, nil
}

// CleanupExpiredTokens deletes expired and revoked refresh tokens and returns
// how many were removed.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	if count > 0 {
		s.log.InfoContext(ctx, "expired tokens removed", slog.Int("count", count))
	}
	return count, nil
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	identity := user.Identity()

	access, err := s.jwt.GenerateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	raw, hash, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{AccessToken: access, RefreshToken: raw, Identity: identity}, nil
}
