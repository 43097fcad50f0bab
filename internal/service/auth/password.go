package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a password credential and signs it in.
// The returned identity is the handle the profile is keyed by. Returns
// ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.Create(ctx, &domain.User{ID: uuid.New(), Email: input.Email})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.authMethods.Create(ctx, &domain.AuthMethod{
			ID:           uuid.New(),
			UserID:       user.ID,
			Method:       domain.AuthMethodPassword,
			PasswordHash: &hashStr,
		}); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		result, err = s.issueTokens(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account created", slog.String("user_id", result.Identity.UserID.String()))
	return result, nil
}

// LoginWithPassword signs in with email and password. Unknown emails, a
// missing password credential and a wrong password all return
// ErrUnauthorized; unknown emails still pay one bcrypt comparison.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, hash, err := s.passwordCredential(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(input.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	s.log.InfoContext(ctx, "signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}

// passwordCredential returns the user and password hash for email, or a nil
// user when either is missing.
func (s *Service) passwordCredential(ctx context.Context, email string) (*domain.User, []byte, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	am, err := s.authMethods.GetByUserAndMethod(ctx, user.ID, domain.AuthMethodPassword)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get auth method: %w", err)
	}
	if am.PasswordHash == nil {
		return nil, nil, nil
	}
	return user, []byte(*am.PasswordHash), nil
}
