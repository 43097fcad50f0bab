// Package profile implements the user-record store: the registration
// profile written at sign-up, keyed by the identity handle.
package profile

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodverse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert writes the profile fields keyed by user id, replacing any existing
// record. Returns domain.ErrNotFound if the user does not exist and
// domain.ErrValidation if the gender is rejected by the schema.
func (r *Repo) Upsert(ctx context.Context, p domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Insert("user_profiles").
		Columns("user_id", "name", "gender", "contact_number", "email").
		Values(p.UserID, p.Name, string(p.Gender), p.ContactNumber, p.Email).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			gender = EXCLUDED.gender,
			contact_number = EXCLUDED.contact_number,
			email = EXCLUDED.email`).
		ToSql()
	if err != nil {
		return fmt.Errorf("profile.Upsert: build query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_profile", p.UserID)
	}

	return nil
}

// GetByUserID returns the stored profile of a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Select("user_id", "name", "gender", "contact_number", "email", "created_at").
		From("user_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile.GetByUserID: build query: %w", err)
	}

	var (
		p      domain.Profile
		gender string
	)
	err = q.QueryRow(ctx, query, args...).
		Scan(&p.UserID, &p.Name, &gender, &p.ContactNumber, &p.Email, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", userID)
	}
	p.Gender = domain.Gender(gender)

	return &p, nil
}
