// Package authmethod implements the credential repository using PostgreSQL.
package authmethod

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodverse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

// Repo provides auth method persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const authMethodColumns = `id, user_id, method, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO auth_methods (id, user_id, method, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + authMethodColumns

const getByUserAndMethodSQL = `
SELECT ` + authMethodColumns + `
FROM auth_methods
WHERE user_id = $1 AND method = $2`

// Create inserts a credential. Returns domain.ErrAlreadyExists when the user
// already has a credential of the same method, domain.ErrNotFound when the
// user does not exist.
func (r *Repo) Create(ctx context.Context, m *domain.AuthMethod) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, m.ID, m.UserID, string(m.Method), m.PasswordHash)

	created, err := scanAuthMethod(row)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", m.UserID)
	}

	return created, nil
}

// GetByUserAndMethod returns the user's credential of the given method.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanAuthMethod(q.QueryRow(ctx, getByUserAndMethodSQL, userID, string(method)))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}

	return m, nil
}

func scanAuthMethod(row pgx.Row) (*domain.AuthMethod, error) {
	var (
		m      domain.AuthMethod
		method string
	)
	if err := row.Scan(&m.ID, &m.UserID, &method, &m.PasswordHash, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Method = domain.AuthMethodType(method)
	return &m, nil
}
